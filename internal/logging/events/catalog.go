package events

import "github.com/atomicstack/seriesview/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(source string, series int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": source, "series": series})
}

func (CatalogTracer) Reloaded(path string, series int) {
	logging.Trace("catalog.reloaded", map[string]interface{}{"path": path, "series": series})
}

func (CatalogTracer) ReloadFailed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.reload-failed", map[string]interface{}{"path": path, "error": err.Error()})
}
