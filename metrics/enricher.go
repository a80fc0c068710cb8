/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher enriches metric attributes with additional context.
// This allows embedding services to add their own contextual attributes
// (e.g., tenant, request route, experiment arm) without coupling the
// evaluation core to specific deployments. The enricher receives base
// attributes (model, dimension, query) and returns an enriched set.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue
