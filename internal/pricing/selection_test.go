package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitgeorgia/transfers/internal/location"
)

func TestSelectionOriginChangeResetsUnreachableDestination(t *testing.T) {
	// Restrict the table so kazbegi is reachable from gudauri but not
	// from batumi.
	svc := &Service{
		table: map[location.Key]map[location.Key]Record{
			location.Gudauri: {location.Kazbegi: rec(35, 50, 75, 100, 150, "50 min", "40 km")},
			location.Batumi:  {location.Kutaisi: rec(100, 130, 190, 250, 380, "2h 45min", "165 km")},
		},
	}

	sel := NewSelection(svc)
	sel.SetOrigin(location.Gudauri)
	require.True(t, sel.SetDestination(location.Kazbegi))
	require.True(t, sel.Complete())

	sel.SetOrigin(location.Batumi)
	assert.Equal(t, location.Batumi, sel.Origin())
	assert.Empty(t, sel.Destination(), "destination should reset when unreachable from new origin")
	assert.False(t, sel.Complete())
}

func TestSelectionOriginChangeKeepsReachableDestination(t *testing.T) {
	svc := NewService()

	sel := NewSelection(svc)
	sel.SetOrigin(location.TbilisiAirport)
	require.True(t, sel.SetDestination(location.Kazbegi))

	// Kazbegi is also reachable from Gudauri, so it survives.
	sel.SetOrigin(location.Gudauri)
	assert.Equal(t, location.Kazbegi, sel.Destination())
	assert.True(t, sel.Complete())
}

func TestSelectionDestinationRequiresOrigin(t *testing.T) {
	sel := NewSelection(NewService())
	assert.False(t, sel.SetDestination(location.Kazbegi))
	assert.Empty(t, sel.Destination())
}

func TestSelectionRejectsUnknownPair(t *testing.T) {
	sel := NewSelection(NewService())
	sel.SetOrigin(location.Kazbegi)
	assert.False(t, sel.SetDestination(location.Kazbegi))
	assert.Empty(t, sel.Destination())
}
