package damas

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const initialEncoded = "p1p1p1p1/1p1p1p1p/p1p1p1p1/8/8/b1b1b1b1/1b1b1b1b/b1b1b1b1 b"

func TestEncodeInitial(t *testing.T) {
	require.Equal(t, initialEncoded, NewGame().Encode())
}

func TestDecodeRoundTrip(t *testing.T) {
	g, err := DecodePosition(initialEncoded)
	require.NoError(t, err)
	require.Equal(t, NewGame().Board, g.Board)
	require.Equal(t, White, g.Turn)

	for _, enc := range []string{
		"8/8/1p6/b1b5/3b4/8/8/8 p",
		"7b/8/5p2/8/3p4/8/1p3p2/B5b1 b",
		"P7/8/8/8/8/8/8/7B p",
	} {
		g, err := DecodePosition(enc)
		require.NoError(t, err, enc)
		require.Equal(t, enc, g.Encode())
	}
}

func TestDecodeAcceptsDots(t *testing.T) {
	g, err := DecodePosition("p.p.p.p./.p.p.p.p/p.p.p.p./......../......../b.b.b.b./.b.b.b.b/b.b.b.b. b")
	require.NoError(t, err)
	require.Equal(t, initialEncoded, g.Encode())
}

func TestDecodeMatchesLayout(t *testing.T) {
	fromLayout := mustGame(t, threeChainLayout)
	decoded, err := DecodePosition(fromLayout.Encode())
	require.NoError(t, err)
	require.Equal(t, fromLayout.Board, decoded.Board)
	require.Equal(t, fromLayout.Hash, decoded.Hash)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, enc := range []string{
		"",
		"8/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8 b",
		"9/8/8/8/8/8/8/8 b",
		"7/8/8/8/8/8/8/8 b",
		"8/8/8/8/8/8/8/7q w",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8b1 b",
		initialEncoded + " 3,3",
		initialEncoded + " 0,5",
		initialEncoded + " 9,9",
		initialEncoded + " 1",
	} {
		g, err := DecodePosition(enc)
		require.True(t, errors.Is(err, ErrInvalidPosition), "%q: %v", enc, err)
		require.Nil(t, g)
	}
}

func TestEncodeMidSequence(t *testing.T) {
	g := mustGame(t, threeChainLayout)
	require.Equal(t, Continue, g.Play(C(0, 7), C(2, 5)).Outcome)

	enc := g.Encode()
	require.True(t, strings.HasSuffix(enc, " b 2,5"), enc)

	decoded, err := DecodePosition(enc)
	require.NoError(t, err)
	require.True(t, decoded.InSequence())
	require.Equal(t, enc, decoded.Encode())
	require.Equal(t, g.Hash, decoded.Hash)
	require.Equal(t, g.LegalChains(), decoded.LegalChains())
	require.Empty(t, decoded.MovesAt(C(6, 7)), "only the continuing king may move")

	fresh, err := DecodePosition(strings.TrimSuffix(enc, " 2,5"))
	require.NoError(t, err)
	require.False(t, fresh.InSequence())
	require.NotEqual(t, g.Hash, fresh.Hash)

	require.Equal(t, Passed, decoded.PlayChain(decoded.LegalChains()[0]).Outcome)
	require.Equal(t, decoded.CalculateHash(), decoded.Hash)
}
