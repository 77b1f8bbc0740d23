package tshock_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/mdouchement/tshock/pkg/tshock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	var (
		nostr  *string
		nobool *bool
		noint  *int
	)

	query, err := tshock.Encode(tshock.Params{
		"msg":      "hello world",
		"empty":    "",
		"confirm":  true,
		"nosave":   false,
		"ticket":   42,
		"big":      int64(-7),
		"small":    uint8(7),
		"type":     tshock.ByID,
		"reason":   tshock.String("griefing"),
		"blank":    tshock.String(""),
		"friendly": tshock.Bool(true),
		"count":    tshock.Int(3),
		"from":     nostr,
		"rules":    nobool,
		"amount":   noint,
		"nothing":  nil,
	}, token)
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"token":    {token},
		"msg":      {"hello world"},
		"empty":    {""},
		"confirm":  {"true"},
		"nosave":   {"false"},
		"ticket":   {"42"},
		"big":      {"-7"},
		"small":    {"7"},
		"type":     {"id"},
		"reason":   {"griefing"},
		"blank":    {""},
		"friendly": {"true"},
		"count":    {"3"},
	}, query)
}

func TestEncode_Empty(t *testing.T) {
	query, err := tshock.Encode(nil, token)
	require.NoError(t, err)

	assert.Equal(t, url.Values{"token": {token}}, query)
}

func TestEncode_Token(t *testing.T) {
	query, err := tshock.Encode(tshock.Params{"token": "forged"}, token)
	require.NoError(t, err)

	assert.Equal(t, url.Values{"token": {token}}, query)
}

func TestEncode_NilStringer(t *testing.T) {
	var (
		start *time.Time
		typ   *tshock.UserType
	)
	by := tshock.ByName

	query, err := tshock.Encode(tshock.Params{
		"identifier": "acc:Bob",
		"start":      start,
		"type":       typ,
		"by":         &by,
	}, token)
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"token":      {token},
		"identifier": {"acc:Bob"},
		"by":         {"name"},
	}, query)
}

func TestEncode_Unsupported(t *testing.T) {
	for name, v := range map[string]any{
		"float":  1.5,
		"slice":  []string{"a"},
		"map":    map[string]string{},
		"struct": struct{}{},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tshock.Encode(tshock.Params{"v": v}, token)
			assert.Error(t, err)
		})
	}
}
