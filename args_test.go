package servicebus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransportArgs_Success(t *testing.T) {
	cfg, err := ParseTransportArgs([]string{
		"--host=localhost",
		"--port=5000",
		"--functions-grpc-max-message-length=134217728",
	})
	assert.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 134217728, cfg.MaxMessageLength)
}

func TestParseTransportArgs_MissingAggregatesAllNames(t *testing.T) {
	_, err := ParseTransportArgs(nil)
	assert.EqualError(t, err, "Missing required arguments: 'host', 'port', 'functions-grpc-max-message-length'")
}

func TestParseTransportArgs_PartialMissing(t *testing.T) {
	_, err := ParseTransportArgs([]string{"--host=localhost"})
	assert.EqualError(t, err, "Missing required arguments: 'port', 'functions-grpc-max-message-length'")
}

func TestParseTransportArgs_ExplicitZeroValuesAreNotTreatedAsMissing(t *testing.T) {
	cfg, err := ParseTransportArgs([]string{
		"--host=localhost",
		"--port=0",
		"--functions-grpc-max-message-length=0",
	})
	assert.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, 0, cfg.MaxMessageLength)
}
