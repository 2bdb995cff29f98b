package pathfinding

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schemas/route_request.schema.json
	routeRequestSchemaJSON string

	// ResultSchema is the JSON schema of a serialized Result.
	//
	//go:embed schemas/result.schema.json
	ResultSchema string
)

const routeRequestSchemaURL = "https://schemas.gridroute.dev/route_request.schema.json"

var routeRequestSchema = jsonschema.MustCompileString(routeRequestSchemaURL, routeRequestSchemaJSON)

// RouteRequest is the JSON form of a routing call. A missing "obstacles" key
// keeps the current layout; an empty array clears it.
type RouteRequest struct {
	Waypoints []Point `json:"waypoints"`
	Obstacles []Point `json:"obstacles,omitempty"`
}

// DecodeRouteRequest validates data against the route request schema and
// decodes it. Schema violations and malformed JSON are reported as
// ErrInvalidRequest. The waypoint count is not checked here; routing reports
// too few waypoints as a failed Result.
func DecodeRouteRequest(data []byte) (RouteRequest, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return RouteRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if err := routeRequestSchema.Validate(doc); err != nil {
		return RouteRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var req RouteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return RouteRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return req, nil
}

// Route runs a decoded request.
func (s *Service) Route(ctx context.Context, req RouteRequest) Result {
	return s.FindPathWithWaypointsContext(ctx, req.Waypoints, req.Obstacles)
}
