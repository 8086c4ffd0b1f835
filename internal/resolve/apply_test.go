package resolve

import (
	"testing"

	"github.com/samunstein/coupgo/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestHandHasMultiset(t *testing.T) {
	hand := []engine.Card{engine.Duke, engine.Contessa, engine.Duke}

	require.True(t, handHasMultiset(hand, engine.Duke, engine.Contessa))
	require.True(t, handHasMultiset(hand, engine.Duke, engine.Duke))
	require.False(t, handHasMultiset(hand, engine.Contessa, engine.Contessa))
	require.False(t, handHasMultiset(hand, engine.Assassin, engine.Duke))
}
