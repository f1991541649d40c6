package prono

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("hfr.services.prono")
