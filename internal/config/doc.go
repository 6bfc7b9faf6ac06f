// Package config provides configuration parsing for hydrate projects.
//
// The configuration is stored in hydrate.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "port": 3000,
//	    "host": "localhost"
//	  },
//	  "diagnostics": {
//	    "enabled": true,
//	    "overlay": true
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "hydrate"
//	  },
//	  "report": {
//	    "bucket": "my-hydration-reports",
//	    "prefix": "reports/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
