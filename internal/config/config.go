package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// Where accepted offers are paid to. Fixed for this deployment,
	// overridable through OFFER_DESTINATION_ADDR.
	DEFAULT_DESTINATION_ADDR = "UQDbnrjL3Mw4ikGWXdl9OVq6MCS3-qNb6WTmn8VnTB-olI2a"

	DEFAULT_TON_MANIFEST_URL = "https://ton-connect.github.io/demo-dapp/tonconnect-manifest.json"
)

var DESTINATION_ADDR string
var TON_MANIFEST_URL string

var log = InitLogger()

func InitConfig() error {
	err := godotenv.Load()
	if err != nil {
		log.Error("Error loading .env file")
	}

	DESTINATION_ADDR = os.Getenv("OFFER_DESTINATION_ADDR")
	if DESTINATION_ADDR == "" {
		DESTINATION_ADDR = DEFAULT_DESTINATION_ADDR
	}

	TON_MANIFEST_URL = os.Getenv("TON_MANIFEST_URL")
	if TON_MANIFEST_URL == "" {
		TON_MANIFEST_URL = DEFAULT_TON_MANIFEST_URL
	}

	return nil
}
