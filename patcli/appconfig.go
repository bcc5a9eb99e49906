package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Defaults, overridable through patcli.yaml in the input directory.
var Model = "Dipole Antenna"
var FreqMHz = 900.0
var LengthM = 0.5
var N = 8
var SpacingLambda = 0.5
var PhaseDeg = 0.0
var NSamples = 360
var MfileName = "pattern.m"
var JSONName = "metrics.json"

// ReadAppConfig reads all the configuration for the app
func ReadAppConfig() {
	viper.AddConfigPath(indir)
	viper.SetConfigName("patcli")

	err := viper.ReadInConfig()
	if err != nil {
		log.Print("ReadInConfig ", err)
	}
	// Set all the default values
	{
		viper.SetDefault("Model", Model)
		viper.SetDefault("FreqMHz", FreqMHz)
		viper.SetDefault("LengthM", LengthM)
		viper.SetDefault("N", N)
		viper.SetDefault("SpacingLambda", SpacingLambda)
		viper.SetDefault("PhaseDeg", PhaseDeg)
		viper.SetDefault("NSamples", NSamples)
		viper.SetDefault("MfileName", MfileName)
		viper.SetDefault("JSONName", JSONName)
	}

	// Load from the external configuration files
	Model = viper.GetString("Model")
	FreqMHz = viper.GetFloat64("FreqMHz")
	LengthM = viper.GetFloat64("LengthM")
	N = viper.GetInt("N")
	SpacingLambda = viper.GetFloat64("SpacingLambda")
	PhaseDeg = viper.GetFloat64("PhaseDeg")
	NSamples = viper.GetInt("NSamples")
	MfileName = viper.GetString("MfileName")
	JSONName = viper.GetString("JSONName")
}
