// Package logging builds the zerolog loggers used across wellco2 and carries
// them, together with a per-run trace ID, through context.Context.
//
// Components retrieve the logger with FromContext and tag their events with
// "component" and "operation" fields:
//
//	log := logging.FromContext(ctx)
//	log.Debug().Ctx(ctx).
//		Str("component", "engine").
//		Str("operation", "calculate_baselines").
//		Msg("calculating step")
package logging
