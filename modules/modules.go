// Package modules lists the operator families compiled into the binary.
package modules

import (
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/specialistvlad/nodecalc/modules/add"
	"github.com/specialistvlad/nodecalc/modules/boolean"
	"github.com/specialistvlad/nodecalc/modules/equality"
	"github.com/specialistvlad/nodecalc/modules/float"
	"github.com/specialistvlad/nodecalc/modules/minus"
	"github.com/specialistvlad/nodecalc/modules/output"
)

// Core returns the definitive list of all operator modules.
func Core() []registry.Module {
	return []registry.Module{
		&add.Module{},
		&output.Module{},
		&float.Module{},
		&minus.Module{},
		&boolean.Module{},
		&equality.Module{},
	}
}
