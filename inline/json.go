package inline

import (
	"encoding/json"
	"io"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/detail"
)

type Episode struct {
	Episode  catalog.Episode    `json:"episode"`
	Offer    detail.Offer       `json:"offer"`
	Watch    action.Destination `json:"watch"`
	Download action.Destination `json:"download"`
}

type Result struct {
	// Source is the name of the provider.
	Source string         `json:"source"`
	Title  *catalog.Title `json:"title"`
	// Offer is empty for multi-episode titles, their episodes carry one each.
	Offer    detail.Offer       `json:"offer"`
	Watch    action.Destination `json:"watch"`
	Download action.Destination `json:"download"`
	Seasons  []int              `json:"seasons"`
	Episodes []*Episode         `json:"episodes"`
}

type Output struct {
	Query  string    `json:"query"`
	Result []*Result `json:"result"`
}

func writeJson(out io.Writer, results []*Result, options *Options) error {
	if results == nil {
		results = []*Result{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{
		Query:  options.Query,
		Result: results,
	})
}
