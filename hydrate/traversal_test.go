package hydrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"null-hydrator/options"
)

type Audit struct {
	CreatedBy *string
}

type audit struct {
	UpdatedBy *string
}

type ledger struct {
	Audit
	audit
	Entries []int
	secret  *string
}

type journal struct {
	*Audit
	Title *string
}

type order struct {
	Billing  address
	Shipping *address
	Lines    []*address
	Fixed    [2]address
	ByName   map[string]address
	ByRef    map[string]*address
	Extra    any
	Notes    *string `hydrate:"-"`
	Other    *string
}

type envelope struct {
	Subject *string
	Payload any
}

type parcel struct {
	Owner *envelope
}

func TestHydrate_InterfaceStartsNewTypePath(t *testing.T) {
	item := &parcel{}
	e := &envelope{Payload: item}

	_, err := Hydrate(e, WithPolicy(options.PolicyDefault|options.PolicySkipUnsupported))
	require.NoError(t, err)

	require.NotNil(t, e.Subject)
	require.NotNil(t, item.Owner)
	assert.NotNil(t, item.Owner.Subject)
	assert.Nil(t, item.Owner.Payload)
}

func TestHydrate_EmbeddedStructs(t *testing.T) {
	l, err := Hydrate(&ledger{})
	require.NoError(t, err)

	require.NotNil(t, l.CreatedBy)
	require.NotNil(t, l.UpdatedBy)
	assert.Equal(t, []int{}, l.Entries)
	assert.Nil(t, l.secret, "unexported fields are not properties")

	j, err := Hydrate(&journal{})
	require.NoError(t, err)
	require.NotNil(t, j.Audit)
	require.NotNil(t, j.CreatedBy)
	assert.Equal(t, "", *j.CreatedBy)
}

func TestHydrate_DescendsIntoPresentComposites(t *testing.T) {
	shared := &address{}
	o := &order{
		Shipping: shared,
		Lines:    []*address{shared, nil, {}},
		ByName:   map[string]address{"home": {}},
		ByRef:    map[string]*address{"work": {}},
		Extra:    &address{},
	}

	_, err := Hydrate(o)
	require.NoError(t, err)

	require.NotNil(t, o.Billing.City)
	require.NotNil(t, o.Shipping.City)
	assert.Same(t, o.Shipping, o.Lines[0])
	assert.Nil(t, o.Lines[1], "absent elements are not properties")
	require.NotNil(t, o.Lines[2].City)
	require.NotNil(t, o.Fixed[0].City)
	require.NotNil(t, o.Fixed[1].City)
	require.NotNil(t, o.ByName["home"].City)
	require.NotNil(t, o.ByRef["work"].City)
	require.NotNil(t, o.Extra.(*address).City)
}

func TestHydrate_PolicyNoneLeavesPresentCompositesAlone(t *testing.T) {
	o := &order{
		Shipping: &address{},
		Lines:    []*address{{}},
		ByName:   map[string]address{"home": {}},
		Extra:    &address{},
	}

	_, err := Hydrate(o, WithPolicy(options.PolicyNone))
	require.NoError(t, err)

	assert.Nil(t, o.Billing.City)
	assert.Nil(t, o.Shipping.City)
	assert.Nil(t, o.Lines[0].City)
	assert.Nil(t, o.ByName["home"].City)
	assert.Nil(t, o.Extra.(*address).City)

	// absent fields are still filled
	assert.NotNil(t, o.ByRef)
	assert.NotNil(t, o.Other)
}

func TestHydrate_DescendPresentWithoutElements(t *testing.T) {
	o := &order{
		Lines:  []*address{{}},
		ByName: map[string]address{"home": {}},
		Extra:  "present",
	}

	_, err := Hydrate(o, WithPolicy(options.PolicyDescendPresent))
	require.NoError(t, err)

	assert.NotNil(t, o.Billing.City)
	assert.Nil(t, o.Lines[0].City)
	assert.Nil(t, o.ByName["home"].City)
}

func TestHydrate_SkippedFields(t *testing.T) {
	o := &order{Extra: 1}

	_, err := Hydrate(o, WithSkip("hydrate.order.Other"))
	require.NoError(t, err)

	assert.Nil(t, o.Notes)
	assert.Nil(t, o.Other)
	assert.Equal(t, 1, o.Extra)
	assert.NotNil(t, o.Shipping)
}

func TestHydrate_CyclicDataTerminates(t *testing.T) {
	n := &node{}
	n.Next = n

	_, err := Hydrate(n)
	require.NoError(t, err)

	require.NotNil(t, n.Name)
	assert.Same(t, n, n.Next)
}

func TestHydrate_UTCPolicy(t *testing.T) {
	type stamped struct {
		At *time.Time
	}

	local, err := Hydrate(&stamped{}, WithClock(FixedClock(fixedNow)), WithPolicy(options.PolicyNone))
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Location(), local.At.Location())

	utc, err := Hydrate(&stamped{}, WithClock(FixedClock(fixedNow)))
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UTC(), *utc.At)
}
