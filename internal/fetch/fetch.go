package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultURL is the canonical location of the engine's Lua API documentation
const DefaultURL = "https://github.com/minetest/minetest/raw/master/doc/lua_api.txt"

// Document retrieves the full documentation text. There is no retry or
// partial-read handling; a failed fetch aborts the run.
func Document(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}
