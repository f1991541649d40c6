package hfr

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("hfr.lib.scrapers.hfr")
