// Package tracego traces paths through 2D and 3D intensity volumes.
//
// Tracego finds the brightest (or most tube-like) route between two voxels
// using a bidirectional best-first search. It is built for neuron tracing
// over microscopy stacks, but works on any grid of intensities.
//
// # Quick Start
//
//	ctx := context.Background()
//	vol := volume.NewDense(512, 512, 60)
//	// ... fill vol ...
//
//	result, err := tracego.Trace(ctx, vol, model.DefaultCalibration(),
//		model.Voxel{X: 10, Y: 10, Z: 5},
//		model.Voxel{X: 400, Y: 300, Z: 42},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Outcome == model.OutcomeComplete {
//		fmt.Println(result.Path.Length(), "physical units")
//	}
//
// # Cost Strategies
//
// By default the search favors bright voxels (reciprocal intensity cost).
// Other built-in strategies can be selected by type:
//
//	tracego.Trace(ctx, vol, cal, start, goal,
//		tracego.WithCostType(cost.TypeOneMinusErf))
//
// For curvilinear structures, a Hessian-based tubeness cost steers the
// search along filaments and typically explores far fewer voxels:
//
//	tracego.Trace(ctx, vol, cal, start, goal,
//		tracego.WithTubeness(0.835))
//
// # Outcomes
//
// A search that terminates without finding a route is not an error: the
// returned Result carries OutcomeNoPath (or OutcomeCanceled/OutcomeTimedOut)
// and a nil Path. Errors are reserved for invalid inputs and contract
// violations of custom cost or heuristic strategies.
//
// # Batch Tracing
//
// TraceAll runs many start/goal pairs concurrently over a shared volume,
// computing image statistics (or the tubeness cache) once:
//
//	results, err := tracego.TraceAll(ctx, vol, cal, []tracego.Pair{
//		{Start: soma, Goal: tipA},
//		{Start: soma, Goal: tipB},
//	})
package tracego
