package networking

import (
	"context"
	"log/slog"
	"sort"

	"fetchrecipes/types"
)

// Pipeline resolves, loads, decodes and sorts one recipe request
type Pipeline struct {
	resolver  Resolver
	transport Transport
	log       *slog.Logger
}

// NewPipeline creates a pipeline. A nil logger discards output.
func NewPipeline(resolver Resolver, transport Transport, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		resolver:  resolver,
		transport: transport,
		log:       logger.With("component", "pipeline"),
	}
}

// Fetch runs the request and returns its result. The first failing step decides the error.
func (p *Pipeline) Fetch(ctx context.Context, rt RequestType) Result {
	log := p.log.With("request_type", string(rt))

	target, err := p.resolver.Resolve(rt)
	if err != nil {
		log.Warn("failed to resolve source", "error", err)
		return Failure(NewFetchError(KindInvalidSource, err))
	}

	data, err := p.transport.Fetch(ctx, target)
	if err != nil {
		log.Warn("transport failed", "target", target.String(), "error", err)
		return Failure(NewFetchError(KindTransportFailure, err))
	}

	if len(data) == 0 {
		log.Warn("empty payload", "target", target.String())
		return Failure(NewFetchError(KindEmptyPayload, nil))
	}

	groups, err := types.DecodeGroups(data)
	if err != nil {
		log.Warn("failed to decode payload", "target", target.String(), "error", err)
		return Failure(NewFetchError(KindDecodeFailure, err))
	}

	views := types.ToViews(groups.First())
	SortByCuisine(views)

	log.Debug("fetched recipes", "target", target.String(), "groups", len(groups), "count", len(views))
	return Success(views)
}

// SortByCuisine orders views by cuisine using a byte-wise, case-sensitive compare.
// Equal cuisines keep their relative order.
func SortByCuisine(views []types.RecipeView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Cuisine < views[j].Cuisine
	})
}
