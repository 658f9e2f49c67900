package cli

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/dijkstra"
)

// solve runs Dijkstra on g with the algorithm hooks forwarded to the logger
// at debug level.
func (a *app) solve(g *core.Graph, source int, withPath bool) (*dijkstra.Result, error) {
	log := a.log.With(zap.Int("source", source))

	opts := []dijkstra.Option{
		dijkstra.WithOnVisit(func(v int, d float64) {
			log.Debug("vertex settled", zap.Int("vertex", v), zap.Float64("dist", d))
		}),
		dijkstra.WithOnRelax(func(from, to int, d float64) {
			log.Debug("edge relaxed", zap.Int("from", from), zap.Int("to", to), zap.Float64("dist", d))
		}),
	}
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	res, err := dijkstra.Dijkstra(g, source, opts...)
	if err != nil {
		log.Error("shortest paths failed", zap.Error(err))
		return nil, err
	}

	log.Info("shortest paths computed",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("pushes", res.Stats.Pushes),
		zap.Int("pops", res.Stats.Pops),
		zap.Int("stale_skips", res.Stats.StaleSkips),
		zap.Int("relaxations", res.Stats.Relaxations),
	)

	return res, nil
}
