// Package hcl provides the HCL implementation of config.Loader. It parses seed
// graph files of the form
//
//	graph "demo" {
//	  output = "output1"
//
//	  node "floatNode" "input1" {
//	    value    = 5
//	    position = [0, 0]
//	  }
//
//	  edge "e1" {
//	    from = "input1.output-1"
//	    to   = "add1.input-1"
//	  }
//	}
//
// and merges every graph block it finds into a single config.Seed.
package hcl
