package players

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vovakirdan/connectn/internal/connectn"
	"github.com/vovakirdan/connectn/internal/registry"
)

func init() {
	registry.Register(registry.StrategyInfo{
		ID:          "random",
		Description: "Computer player choosing uniformly among open columns",
	}, func(opts registry.Options) (connectn.Player, error) {
		return NewRandom(opts.Name, opts.Seed), nil
	})
	registry.Register(registry.StrategyInfo{
		ID:          "terminal",
		Description: "Human player typing column numbers at a prompt",
		Interactive: true,
	}, func(opts registry.Options) (connectn.Player, error) {
		if opts.In == nil || opts.Out == nil {
			return nil, fmt.Errorf("terminal player %q needs input and output streams", opts.Name)
		}
		return NewTerminal(opts.Name, lineReader(opts.In), opts.Out), nil
	})
}

var (
	fileReaders   = make(map[*os.File]*bufio.Reader)
	fileReadersMu sync.Mutex
)

// lineReader returns one buffered reader per open file, so terminal players
// seated on the same stdin read it in turn.
func lineReader(in io.Reader) io.Reader {
	f, ok := in.(*os.File)
	if !ok {
		return in
	}
	fileReadersMu.Lock()
	defer fileReadersMu.Unlock()
	br, ok := fileReaders[f]
	if !ok {
		br = bufio.NewReader(f)
		fileReaders[f] = br
	}
	return br
}
