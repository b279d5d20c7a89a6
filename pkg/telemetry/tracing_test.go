package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false, Endpoint: "nowhere:1"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestConfig_Normalized(t *testing.T) {
	c := Config{SampleRatio: 5}.normalized()
	assert.Equal(t, defaultEndpoint, c.Endpoint)
	assert.Equal(t, "medcatalog", c.ServiceName)
	assert.Equal(t, 1.0, c.SampleRatio)

	c = Config{ServiceName: "web", Endpoint: "jaeger:4318", SampleRatio: -1}.normalized()
	assert.Equal(t, "jaeger:4318", c.Endpoint)
	assert.Equal(t, "web", c.ServiceName)
	assert.Zero(t, c.SampleRatio)
}
