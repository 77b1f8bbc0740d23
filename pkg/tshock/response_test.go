package tshock_test

import (
	"encoding/json"
	"testing"

	"github.com/mdouchement/tshock/pkg/tshock"
	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	res := tshock.Response{"status": "200", "response": "Successfully broadcast message"}
	assert.Equal(t, "200", res.Status())
	assert.True(t, res.OK())
	assert.Equal(t, "Successfully broadcast message", res.Message())

	res = tshock.Response{"status": "400", "error": "Missing or empty msg parameter", "response": "ignored"}
	assert.Equal(t, "400", res.Status())
	assert.False(t, res.OK())
	assert.Equal(t, "Missing or empty msg parameter", res.Message())

	res = tshock.Response{"status": json.Number("200")}
	assert.True(t, res.OK())
	assert.Empty(t, res.Message())

	res = tshock.Response{"status": nil}
	assert.Empty(t, res.Status())
	assert.False(t, res.OK())
}
