// Package config provides configuration parsing for tagr tools.
//
// The configuration is stored in tagr.json at the project root. This
// package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "todo",
//	  "inspector": {
//	    "host": "localhost",
//	    "port": 7070
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "tagr"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "tagr"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "debug": false
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Inspector:", cfg.InspectorAddress())
package config
