package backbutton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvokerIgnoresCallsBeforeInitialize(t *testing.T) {
	var inv Invoker
	rec := &recorder{}
	h := &forgetful{name: "early", rec: rec}

	require.NotPanics(t, func() {
		inv.Register(h)
		inv.Deregister(h)
		require.False(t, inv.Dispatch())
	})
	require.False(t, inv.Initialized())
	require.Equal(t, 0, inv.Len())
	require.Empty(t, rec.closed)
}

func TestInvokerInitializeIsIdempotent(t *testing.T) {
	var inv Invoker
	inv.Initialize()
	first := inv.Registry()
	inv.Register(&forgetful{rec: &recorder{}})

	inv.Initialize()
	require.Same(t, first, inv.Registry())
	require.Equal(t, 1, inv.Len())
}

func TestInvokerDispatch(t *testing.T) {
	var inv Invoker
	inv.Initialize()
	rec := &recorder{}
	h1 := &polite{name: "h1", reg: inv.Registry(), rec: rec}
	h2 := &forgetful{name: "h2", rec: rec}
	inv.Register(h1)
	inv.Register(h2)

	require.True(t, inv.Dispatch())
	require.True(t, inv.Dispatch())
	require.False(t, inv.Dispatch())
	require.Equal(t, []string{"h2", "h1"}, rec.closed)
}

func TestInvokerTeardown(t *testing.T) {
	var inv Invoker
	inv.Initialize()
	inv.Register(&forgetful{rec: &recorder{}})
	inv.Teardown()

	require.False(t, inv.Initialized())
	require.False(t, inv.Dispatch())

	inv.Initialize()
	require.Equal(t, 0, inv.Len())
}

func TestNilInvokerIsNoop(t *testing.T) {
	var inv *Invoker
	require.NotPanics(t, func() {
		inv.Register(&forgetful{rec: &recorder{}})
		require.False(t, inv.Dispatch())
	})
	require.False(t, inv.Initialized())
}
