package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kentsel/kentsel/internal/risk"
	"github.com/kentsel/kentsel/internal/scenario"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmdFlags(t *testing.T) {
	f := newScoreCmd().Flags()

	outputFmt, _ := f.GetString("output")
	assert.Equal(t, "text", outputFmt)
	density, _ := f.GetString("density")
	assert.Equal(t, risk.DensityMedium, density)

	for _, flag := range []string{"scenario", "green", "density", "flood", "infra", "output"} {
		assert.NotNil(t, f.Lookup(flag), "missing flag: %s", flag)
	}
}

func TestScoreCmd_Text(t *testing.T) {
	out, err := execute(t, "score", "--scenario", "merkez", "--green", "20", "--density", "orta", "--flood", "0", "--infra", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 45/100")
	assert.Contains(t, out, "Level: Medium Risk")
}

func TestScoreCmd_JSON(t *testing.T) {
	out, err := execute(t, "score", "--scenario", "yesil", "--green", "60", "--density", "dusuk", "-o", "json")
	require.NoError(t, err)

	var a risk.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, risk.Score(risk.Input{
		Scenario: "yesil", GreenRatio: 60, PopulationDensity: "dusuk", InfrastructureScore: 10,
	}), a)
}

func TestScoreCmd_BadFormat(t *testing.T) {
	_, err := execute(t, "score", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestScenariosCmd_Text(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	for _, k := range scenario.Default().Keys() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "(default)")
}

func TestScenariosCmd_YAML(t *testing.T) {
	out, err := execute(t, "scenarios", "-o", "yaml")
	require.NoError(t, err)

	var views []scenarioView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	require.Len(t, views, len(scenario.Default().Keys()))
	assert.Equal(t, "merkez", views[0].Key)
	assert.Equal(t, scenario.Default().Analysis("merkez"), views[0].Analysis)
}

func TestScenariosCmd_JSON(t *testing.T) {
	out, err := execute(t, "scenarios", "--output", "json")
	require.NoError(t, err)

	var views []scenarioView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	assert.Len(t, views, len(scenario.Default().Keys()))
}

func TestSimulateCmd(t *testing.T) {
	out, err := execute(t, "simulate", "--scenario", "merkez", "--target", "25")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Scenario: merkez"))
	assert.Contains(t, out, "Level: "+scenario.SimLevelLow)

	var sim scenario.Simulation
	out, err = execute(t, "simulate", "--target", "5", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.Equal(t, scenario.Default().SimulateGreen("merkez", 5), sim)
}

func TestSimulateCmd_TargetRequired(t *testing.T) {
	_, err := execute(t, "simulate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
}
