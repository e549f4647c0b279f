package client

import (
	"net/url"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a copy-pasteable curl command for the
// debug log, so a failing exchange can be replayed by hand.
func curlCommand(method, requestURL string, form url.Values) string {
	var b commandBuilder
	b.add("curl", "-s", "-X", method, requestURL)
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range form[k] {
			b.add("-d", k+"="+v)
		}
	}
	return b.String()
}
