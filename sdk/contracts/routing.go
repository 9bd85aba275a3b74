package contracts

// RouteRef locates one cell of the routing matrix. Input and Output are
// 0-based. ControlIndex points into the catalog the index was derived
// from; it is invalid after the next rebuild.
type RouteRef struct {
	Input        int
	Output       int
	ControlIndex int
}

// RoutingIndex groups the routing controls recovered from element names.
// Route order follows catalog order. The lists are sparse: a consumer
// needing a dense grid computes max(Input)/max(Output) itself.
type RoutingIndex struct {
	AnalogRoutes  []RouteRef
	DigitalRoutes []RouteRef
}
