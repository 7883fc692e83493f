package umpstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpointNameSinglePacketRoundTrips(t *testing.T) {
	m := NewText(EndpointName, "my endpoint")
	words := m.ToUMP()
	require.Len(t, words, 4)

	back, err := FromUMP(words, EndpointName)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestProductInstanceIDMultiPacketRoundTrips(t *testing.T) {
	text := strings.Repeat("xy", 20) // 40 bytes, spans 3 packets of 14
	m := NewText(ProductInstanceID, text)
	words := m.ToUMP()
	require.Len(t, words, 12)

	back, err := FromUMP(words, ProductInstanceID)
	require.NoError(t, err)
	require.Equal(t, text, back.Value)
}

func TestFunctionBlockNameRoundTripsWithNumber(t *testing.T) {
	m := NewFunctionBlockName(0x5, "main synth")
	words := m.ToUMP()

	back, err := FromUMP(words, FunctionBlockName)
	require.NoError(t, err)
	require.Equal(t, uint8(0x5), back.FunctionBlockNumber)
	require.Equal(t, "main synth", back.Value)
}

func TestFunctionBlockNameMultiPacketPreservesNumber(t *testing.T) {
	text := strings.Repeat("q", 30)
	m := NewFunctionBlockName(0xA, text)
	words := m.ToUMP()
	require.Greater(t, len(words), 4)

	back, err := FromUMP(words, FunctionBlockName)
	require.NoError(t, err)
	require.Equal(t, uint8(0xA), back.FunctionBlockNumber)
	require.Equal(t, text, back.Value)
}

func TestTextEmptyPayloadIsOnePacket(t *testing.T) {
	m := NewText(EndpointName, "")
	words := m.ToUMP()
	require.Len(t, words, 4)

	back, err := FromUMP(words, EndpointName)
	require.NoError(t, err)
	require.Equal(t, "", back.Value)
}

func TestTextRejectsWrongKind(t *testing.T) {
	m := NewText(EndpointName, "x")
	_, err := FromUMP(m.ToUMP(), ProductInstanceID)
	require.Error(t, err)
}
