// Package demo runs the sample session showing how LinkedHashmap keeps
// insertion order across removals.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ordered/linkedmap/container/linked_hashmap"
	"github.com/ordered/linkedmap/errors"
)

const (
	FormatText  = "text"
	FormatTable = "table"
)

var sampleEntries = []linked_hashmap.Item[string, int]{
	{Key: "First", Value: 5},
	{Key: "Second", Value: 8},
	{Key: "Third", Value: 9},
	{Key: "Fourth", Value: 11},
	{Key: "Fifth", Value: 15},
	{Key: "Sixth", Value: 20},
}

type Runner struct {
	out    io.Writer
	logger *slog.Logger
	format string
}

func NewRunner(out io.Writer, logger *slog.Logger, format string) (*Runner, error) {
	switch format {
	case FormatText, FormatTable:
	default:
		return nil, errors.Newf("unknown output format %q", format)
	}
	return &Runner{out: out, logger: logger, format: format}, nil
}

// Run inserts the sample entries, removes two interior ones, looks one up,
// drains the rest through a cursor and finally removes a missing key.
func (r *Runner) Run() error {
	lhm := linked_hashmap.NewLinkedHashmap[string, int](len(sampleEntries))
	for _, item := range sampleEntries {
		lhm.Put(item.Key, item.Value)
	}
	r.logger.Debug("inserted sample entries", "count", lhm.Len())
	r.print("Insertion order", lhm)

	for _, key := range []string{"Third", "Fourth"} {
		val, _ := lhm.Remove(key)
		r.logger.Debug("removed entry", "key", key, "value", val)
	}
	r.print("After removing Third and Fourth", lhm)

	val, ok := lhm.Get("Fifth")
	if !ok {
		return errors.New("Fifth is missing")
	}
	fmt.Fprintf(r.out, "Fifth: %d\n\n", val)

	cur := lhm.Iter()
	for i := 0; cur.Next(); i++ {
		fmt.Fprintf(r.out, "Removing index: %d (%s)\n", i, cur.Key())
		lhm.Remove(cur.Key())
	}
	if err := cur.Err(); err != nil {
		return errors.Wrap(err, "draining map")
	}
	fmt.Fprintln(r.out)

	if _, ok := lhm.Remove("Garbage"); !ok {
		r.logger.Info("remove of missing key ignored", "key", "Garbage")
	}
	r.print("Remaining entries", lhm)
	return nil
}

func (r *Runner) print(title string, lhm *linked_hashmap.LinkedHashmap[string, int]) {
	fmt.Fprintf(r.out, "%s:\n", title)
	if r.format == FormatTable {
		var data [][]string
		for i, item := range lhm.Items() {
			data = append(data, []string{strconv.Itoa(i), item.Key, strconv.Itoa(item.Value)})
		}
		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"POSITION", "KEY", "VALUE"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(data)
		table.Render()
	} else {
		cur := lhm.Iter()
		for cur.Next() {
			fmt.Fprintf(r.out, "%s: %d\n", cur.Key(), cur.Value())
		}
	}
	fmt.Fprintln(r.out)
}
