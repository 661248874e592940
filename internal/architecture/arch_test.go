package architecture_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/Nazarious-ucu/skyweather`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	rulesLayer, err := arctest.NewLayer("rules", `^`+mod+`/internal/validator`)
	require.NoError(t, err)

	infraLayer, err := arctest.NewLayer("infrastructure",
		`^`+mod+`/internal/services/(weather|cache|metrics|logger)`,
		`^`+mod+`/pkg/logger`,
	)
	require.NoError(t, err)

	presentationLayer, err := arctest.NewLayer("presentation", `^`+mod+`/internal/(widget|surface)`)
	require.NoError(t, err)

	transportLayer, err := arctest.NewLayer("transport", `^`+mod+`/internal/handlers`)
	require.NoError(t, err)

	compositionLayer, err := arctest.NewLayer("composition", `^`+mod+`/(internal/app|internal/config|cmd)`)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(
		domainLayer, rulesLayer, infraLayer, presentationLayer, transportLayer, compositionLayer,
	)

	assert.NoError(t, rulesLayer.DependsOnLayer(domainLayer))

	assert.NoError(t, infraLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, infraLayer.DependsOnLayer(rulesLayer))

	assert.NoError(t, presentationLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, presentationLayer.DependsOnLayer(rulesLayer))
	assert.NoError(t, presentationLayer.DependsOnLayer(infraLayer))

	assert.NoError(t, transportLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, transportLayer.DependsOnLayer(rulesLayer))
	assert.NoError(t, transportLayer.DependsOnLayer(infraLayer))
	assert.NoError(t, transportLayer.DependsOnLayer(presentationLayer))

	assert.NoError(t, compositionLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, compositionLayer.DependsOnLayer(rulesLayer))
	assert.NoError(t, compositionLayer.DependsOnLayer(infraLayer))
	assert.NoError(t, compositionLayer.DependsOnLayer(presentationLayer))
	assert.NoError(t, compositionLayer.DependsOnLayer(transportLayer))

	violations, err := layered.Check()
	require.NoError(t, err)

	assert.Len(t, violations, 0)

	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
