// Command seqdemo exercises fixed-capacity sequences: sorting, in-place
// scaling and in-place construction of non-copyable elements.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/pavanmanishd/fixedseq"
	"github.com/pavanmanishd/fixedseq/contract"
)

func main() {
	configPath := flag.String("config", "", "violation handling config (.toml, .yaml)")
	demo := flag.String("demo", "all", "demo to run: sort|scale|emplace|all")
	flag.Parse()

	cfg := contract.DefaultConfig()
	if *configPath != "" {
		loaded, err := contract.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	restore, err := cfg.Apply()
	if err != nil {
		log.Fatal(err)
	}
	defer restore()

	if err := run(os.Stdout, *demo, contract.Logger()); err != nil {
		log.Fatal(err)
	}
}

var demos = map[string]func(io.Writer){
	"sort":    sortDemo,
	"scale":   scaleDemo,
	"emplace": emplaceDemo,
}

func run(w io.Writer, demo string, logger *zap.Logger) error {
	names := []string{demo}
	if demo == "all" {
		names = []string{"sort", "scale", "emplace"}
	}
	for _, name := range names {
		fn, ok := demos[name]
		if !ok {
			return fmt.Errorf("unknown demo %q (want sort|scale|emplace|all)", name)
		}
		logger.Info("running demo", zap.String("demo", name))
		fn(w)
	}
	return nil
}

func printSeq[T any](w io.Writer, s *fixedseq.Sequence[T]) {
	parts := make([]string, 0, s.Len())
	for v := range s.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func sortDemo(w io.Writer) {
	var vec fixedseq.Fixed[int, [10]int]
	vec.Init()
	for i := 9; i >= 0; i-- {
		vec.PushBack(i)
	}
	printSeq(w, &vec.Sequence)
	slices.Sort(vec.Slice())
	printSeq(w, &vec.Sequence)
}

func scaleDemo(w io.Writer) {
	vec := fixedseq.NewFixed[int, [8]int]()
	for i := 0; !vec.Full(); i++ {
		vec.PushBack(i)
	}
	printSeq(w, &vec.Sequence)
	for i := range vec.Len() {
		*vec.Index(i) *= 20
	}
	printSeq(w, &vec.Sequence)
}

// gauge holds a lock and therefore must be built in place.
type gauge struct {
	_     noCopy
	value int
}

func (g *gauge) Init(v int) { g.value = v }

func (g *gauge) String() string { return fmt.Sprint(g.value) }

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func emplaceDemo(w io.Writer) {
	vec := fixedseq.NewFixed[gauge, [10]gauge]()
	for i := range 20 {
		if !vec.Full() {
			fixedseq.Construct1(vec.EmplaceBack(), (*gauge).Init, i)
		}
	}
	fmt.Fprintln(w, "size:", vec.Len())
	vec.Erase(0)
	parts := make([]string, 0, vec.Len())
	for i := range vec.Len() {
		parts = append(parts, vec.Index(i).String())
	}
	fmt.Fprintln(w, "after erase:", strings.Join(parts, " "))
}
