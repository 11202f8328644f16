package fx

import (
	"go.uber.org/fx"

	httpFX "github.com/sp3dr4/wren/internal/fx/http"
)

// HTTPServerModules combines all modules needed for the HTTP server
// entrypoint.
var HTTPServerModules = fx.Options(
	CoreModules,
	httpFX.HTTPModule,
	httpFX.HTTPLifecycleModule,
)
