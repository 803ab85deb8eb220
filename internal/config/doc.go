// Package config loads hydration settings from a YAML file.
//
// Example:
//
//	version: "1"
//	policy:
//	  descend_present: true
//	  descend_elements: true
//	  leave_cycles: false
//	  skip_unsupported: false
//	  utc: true
//	skip:
//	  - store.Order.Notes
//	fixed_time: "2024-01-02T03:04:05Z"
//	log_level: debug
//
// Policy keys that are left out keep their options.PolicyDefault value.
package config
