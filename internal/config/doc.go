// Package config provides configuration parsing for vexel projects.
//
// The configuration is stored in vexel.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "serve": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "maxSessions": 100,
//	    "heartbeat": "30s",
//	    "metrics": true
//	  },
//	  "render": {
//	    "output": "out.png",
//	    "width": 800,
//	    "height": 600
//	  },
//	  "format": {
//	    "pretty": true,
//	    "indent": "  "
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.ServeAddress())
package config
