package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func resetGlobalConfig() {
	globalConfig = &Config{
		RpcEndpoint:      "http://localhost:8545",
		VaultAddress:     "",
		MetricsPort:      12798,
		InstantPreflight: true,
	}
}

func TestLoad_CompareFullStruct(t *testing.T) {
	resetGlobalConfig()
	yamlContent := `
rpcEndpoint: "https://rpc.example.com"
vaultAddress: "0x1111111111111111111111111111111111111111"
metricsPort: 8088
instantPreflight: false
`

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-paramlock.yaml")

	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	defer os.Remove(tmpFile)

	expected := &Config{
		RpcEndpoint:      "https://rpc.example.com",
		VaultAddress:     "0x1111111111111111111111111111111111111111",
		MetricsPort:      8088,
		InstantPreflight: false,
	}

	actual, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Errorf(
			"Loaded config does not match expected.\nActual: %+v\nExpected: %+v",
			actual,
			expected,
		)
	}
}

func TestLoad_WithoutConfigFile_UsesDefaults(t *testing.T) {
	resetGlobalConfig()

	// Without Config file
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Expected is the original default values from globalConfig
	expected := &Config{
		RpcEndpoint:      "http://localhost:8545",
		VaultAddress:     "",
		MetricsPort:      12798,
		InstantPreflight: true,
	}

	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf(
			"config mismatch without file:\nExpected: %+v\nGot:      %+v",
			expected,
			cfg,
		)
	}
}

func TestLoad_WithInvalidVaultAddress(t *testing.T) {
	resetGlobalConfig()

	yamlContent := `
vaultAddress: "not-an-address"
`

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-bad-vault.yaml")

	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err = LoadConfig(tmpFile)
	if err == nil {
		t.Fatalf("expected error for invalid vault address, got nil")
	}
}

func TestVaultAddressParsing(t *testing.T) {
	resetGlobalConfig()

	yamlContent := `
vaultAddress: "0x00000000000000000000000000000000DeaDBeef"
`

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-vault-addr.yaml")

	err := os.WriteFile(tmpFile, []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected := "0x00000000000000000000000000000000DeaDBeef"
	if cfg.Vault().Hex() != expected {
		t.Errorf("expected vault %s, got: %s", expected, cfg.Vault().Hex())
	}
}
