package sdl

import "context"

// Snapshot is the nested input/mode settings mapping returned by a mode's
// Values accessor. It reflects instrument-reported state at the moment of
// query and is re-fetched on every call, never cached.
type Snapshot struct {
	Input map[string]string
	Mode  map[string]string
}

// queryValues fetches one raw reply per key. The queries map is keyed by
// snapshot key, valued by the SCPI query string.
func (c *Command) queryValues(ctx context.Context, queries map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(queries))
	for key, query := range queries {
		v, err := c.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}
