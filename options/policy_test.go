package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"null-hydrator/options"
)

func ExamplePolicyEnum_String() {
	fmt.Println(options.PolicyDefault)
	fmt.Println(options.PolicyNone)
	fmt.Println(options.PolicyDefault.With(options.PolicyLeaveCycles, true).With(options.PolicyUTC, false))
	// Output:
	// descend_present|descend_elements|utc
	// none
	// descend_present|descend_elements|leave_cycles
}

func TestPolicyEnum_Has(t *testing.T) {
	t.Parallel()

	assert.True(t, options.PolicyAll.Has(options.PolicyDefault))
	assert.True(t, options.PolicyDefault.Has(options.PolicyUTC))
	assert.False(t, options.PolicyDefault.Has(options.PolicyLeaveCycles))
	assert.False(t, options.PolicyDefault.Has(options.PolicyUTC|options.PolicySkipUnsupported))
	assert.True(t, options.PolicyNone.Has(options.PolicyNone))
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, unknown := options.ParsePolicy(options.PolicyAll.String())
	assert.Equal(t, options.PolicyAll, p)
	assert.Empty(t, unknown)

	p, unknown = options.ParsePolicy("utc | bogus|leave_cycles")
	assert.Equal(t, options.PolicyUTC|options.PolicyLeaveCycles, p)
	assert.Equal(t, []string{"bogus"}, unknown)

	p, unknown = options.ParsePolicy("none")
	assert.Equal(t, options.PolicyNone, p)
	assert.Empty(t, unknown)
}
