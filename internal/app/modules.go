package app

import (
	"github.com/qgridlab/qcostgo/internal/registry"
	"github.com/qgridlab/qcostgo/modules/surface"
	"github.com/qgridlab/qcostgo/modules/tfactory"
)

// coreModules are the cost models every application instance registers by
// default. Tests inject their own module lists instead.
var coreModules = []registry.Module{
	&surface.Module{},
	&tfactory.Module{},
}
