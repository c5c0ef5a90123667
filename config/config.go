package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dpseq/dafsa-privacy/event"
)

// BindFlags registers the pipeline's tunable parameters as persistent
// flags on cmd, defaulted from event.DefaultParameters.
func BindFlags(cmd *cobra.Command) {
	defaults := event.DefaultParameters()
	cmd.PersistentFlags().Float64("delta", defaults.Delta, "privacy margin delta, in (0,1)")
	cmd.PersistentFlags().Float64("theta", defaults.Theta, "risk threshold theta")
	cmd.PersistentFlags().Float64("epsilon-d", defaults.EpsilonD, "frequency-noise budget epsilon_d")
	cmd.PersistentFlags().Int64("seed", defaults.Seed, "PRNG seed (0 selects the default)")
	cmd.PersistentFlags().String("config", "", "optional YAML config file")
}

// Load resolves Parameters by layering, in increasing precedence:
// defaults, an optional YAML config file (--config), environment
// variables prefixed DPSEQ_, and command-line flags. The result is
// validated before being returned.
func Load(cmd *cobra.Command) (event.Parameters, error) {
	v := viper.New()
	defaults := event.DefaultParameters()
	v.SetDefault("delta", defaults.Delta)
	v.SetDefault("theta", defaults.Theta)
	v.SetDefault("epsilon_d", defaults.EpsilonD)
	v.SetDefault("seed", defaults.Seed)

	v.SetEnvPrefix("dpseq")
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return event.Parameters{}, wrapf("Load", event.ErrIOError, "reading config file %q: %v", path, err)
		}
	}

	if err := v.BindPFlag("delta", cmd.Flags().Lookup("delta")); err != nil {
		return event.Parameters{}, wrapf("Load", event.ErrSchemaError, "binding delta flag: %v", err)
	}
	if err := v.BindPFlag("theta", cmd.Flags().Lookup("theta")); err != nil {
		return event.Parameters{}, wrapf("Load", event.ErrSchemaError, "binding theta flag: %v", err)
	}
	if err := v.BindPFlag("epsilon_d", cmd.Flags().Lookup("epsilon-d")); err != nil {
		return event.Parameters{}, wrapf("Load", event.ErrSchemaError, "binding epsilon-d flag: %v", err)
	}
	if err := v.BindPFlag("seed", cmd.Flags().Lookup("seed")); err != nil {
		return event.Parameters{}, wrapf("Load", event.ErrSchemaError, "binding seed flag: %v", err)
	}

	params := event.Parameters{
		Delta:    v.GetFloat64("delta"),
		Theta:    v.GetFloat64("theta"),
		EpsilonD: v.GetFloat64("epsilon_d"),
		Seed:     v.GetInt64("seed"),
	}
	if err := params.Validate(); err != nil {
		return event.Parameters{}, err
	}
	return params, nil
}

// DumpYAML renders Parameters as YAML, using the struct's yaml tags.
func DumpYAML(p event.Parameters) (string, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return "", wrapf("DumpYAML", event.ErrSchemaError, "marshaling parameters: %v", err)
	}
	return string(out), nil
}
