// Package config handles loading and validating Rentdesk Core configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (RENTDESK_* prefix)
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (the JWT signing secret) should be set via environment variables
//   - The config file should have restricted permissions (0600)
//   - The JWT secret has a minimum-length requirement enforced at load time
//
// Configuration is loaded once at startup; there is no runtime reload.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.API.Port)
package config
