package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agrigo/farmstore"
	"github.com/agrigo/farmstore/query"
	"github.com/agrigo/farmstore/rank"
	"github.com/agrigo/farmstore/record"
)

var runDataset string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive record manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := newStore()
		if err != nil {
			return err
		}

		session := &session{
			store: store,
			in:    bufio.NewScanner(os.Stdin),
		}

		ctx := cmd.Context()
		if runDataset != "" {
			if err := store.LoadCSV(ctx, runDataset); err != nil {
				return fmt.Errorf("load %s: %w", runDataset, err)
			}
			fmt.Printf("Loaded %d record(s) from %s\n", store.Count(), runDataset)
		}

		session.loop(ctx)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runDataset, "dataset", "", "dataset to load on startup")
}

// session holds the interactive state: the store plus the results of the last
// search or top-N, which the export action reuses.
type session struct {
	store       *farmstore.Store
	in          *bufio.Scanner
	lastResults []record.Record
}

const menu = `
==== Farm Production Records ====
 1) Load dataset
 2) Display all records
 3) Display record range
 4) Add record
 5) Update record
 6) Delete record
 7) Text search
 8) Condition search
 9) Sort records
10) Top N records
11) Unique values
12) Summary statistics
13) Save dataset
14) Export last results
 0) Exit`

func (s *session) loop(ctx context.Context) {
	for {
		fmt.Println(menu)
		choice := s.prompt("Choice: ")

		switch choice {
		case "1":
			s.load(ctx)
		case "2":
			renderRecords(os.Stdout, s.store.Records())
		case "3":
			s.displayRange()
		case "4":
			s.add()
		case "5":
			s.update()
		case "6":
			s.delete()
		case "7":
			s.textSearch()
		case "8":
			s.conditionSearch()
		case "9":
			s.sort()
		case "10":
			s.topN()
		case "11":
			s.unique()
		case "12":
			renderSummary(os.Stdout, s.store.Summarize())
		case "13":
			s.save(ctx)
		case "14":
			s.export(ctx)
		case "0", "":
			fmt.Println("Bye")
			return
		default:
			fmt.Printf("Unknown choice %q\n", choice)
		}
	}
}

func (s *session) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *session) promptInt(label string) (int, bool) {
	raw := s.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Not a number: %q\n", raw)
		return 0, false
	}
	return n, true
}

func (s *session) promptField(label string) (record.Field, bool) {
	raw := s.prompt(label)
	f := record.Field(raw)
	if !record.Valid(f) {
		fmt.Printf("Unknown column %q. Columns: %s\n", raw, fieldList())
		return "", false
	}
	return f, true
}

func fieldList() string {
	fields := record.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (s *session) load(ctx context.Context) {
	name := s.prompt("Dataset name: ")
	if name == "" {
		return
	}
	if err := s.store.LoadCSV(ctx, name); err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}
	fmt.Printf("Loaded %d record(s) from %s\n", s.store.Count(), name)
}

func (s *session) displayRange() {
	start, ok := s.promptInt("Start index: ")
	if !ok {
		return
	}
	end, ok := s.promptInt("End index: ")
	if !ok {
		return
	}
	renderIndexed(os.Stdout, s.store.RecordsInRange(start, end))
}

func (s *session) add() {
	var r record.Record
	fmt.Println("Enter field values (empty to skip):")
	for _, f := range record.Fields() {
		v := s.prompt(fmt.Sprintf("  %s: ", f))
		_ = record.Set(&r, f, v)
	}
	s.store.Add(r)
	fmt.Printf("Added record %d\n", s.store.Count()-1)
}

func (s *session) update() {
	i, ok := s.promptInt("Record index: ")
	if !ok {
		return
	}
	r, err := s.store.Record(i)
	if err != nil {
		fmt.Printf("Update failed: %v\n", err)
		return
	}

	renderDetail(os.Stdout, r)
	fmt.Println("Enter new values (empty keeps current):")
	for _, f := range record.Fields() {
		v := s.prompt(fmt.Sprintf("  %s: ", f))
		if v != "" {
			_ = record.Set(&r, f, v)
		}
	}

	if err := s.store.Update(i, r); err != nil {
		fmt.Printf("Update failed: %v\n", err)
		return
	}
	fmt.Printf("Updated record %d\n", i)
}

func (s *session) delete() {
	i, ok := s.promptInt("Record index: ")
	if !ok {
		return
	}
	if confirm := s.prompt(fmt.Sprintf("Delete record %d? (y/N): ", i)); !strings.EqualFold(confirm, "y") {
		fmt.Println("Cancelled")
		return
	}
	if err := s.store.Delete(i); err != nil {
		fmt.Printf("Delete failed: %v\n", err)
		return
	}
	fmt.Printf("Deleted record %d\n", i)
}

func (s *session) textSearch() {
	term := s.prompt("Search text: ")
	if term == "" {
		return
	}
	results := s.store.FindText(term)
	renderIndexed(os.Stdout, results)

	s.lastResults = s.lastResults[:0]
	for _, row := range results {
		s.lastResults = append(s.lastResults, row.Record)
	}
}

func (s *session) conditionSearch() {
	var conditions []query.Condition
	fmt.Println("Enter conditions as column:operator:value (empty line to finish).")
	fmt.Printf("Operators: eq, ne, gt, gte, lt, lte, contains, startswith, endswith, regex\n")
	for {
		line := s.prompt("> ")
		if line == "" {
			break
		}
		cond, err := parseCondition(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		conditions = append(conditions, cond)
	}

	q := query.And(conditions...)
	if len(conditions) > 1 {
		if combine := s.prompt("Combine with (and/or) [and]: "); strings.EqualFold(combine, "or") {
			q = query.Or(conditions...)
		}
	}

	results, err := s.store.Search(q)
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		return
	}

	renderRecords(os.Stdout, results)
	s.lastResults = results
}

func (s *session) sort() {
	f, ok := s.promptField("Sort column: ")
	if !ok {
		return
	}
	desc := strings.EqualFold(s.prompt("Descending? (y/N): "), "y")

	if err := s.store.Sort(rank.SortSpec{Field: f, Ascending: !desc}); err != nil {
		fmt.Printf("Sort failed: %v\n", err)
		return
	}
	renderRecords(os.Stdout, s.store.Records())
}

func (s *session) topN() {
	f, ok := s.promptField("Order column: ")
	if !ok {
		return
	}
	n, ok := s.promptInt("N: ")
	if !ok {
		return
	}
	desc := strings.EqualFold(s.prompt("Descending? (y/N): "), "y")

	results, err := s.store.TopN(rank.TopNSpec{
		N:        n,
		SortSpec: rank.SortSpec{Field: f, Ascending: !desc},
	})
	if err != nil {
		fmt.Printf("Top N failed: %v\n", err)
		return
	}

	renderRecords(os.Stdout, results)
	s.lastResults = results
}

func (s *session) unique() {
	f, ok := s.promptField("Column: ")
	if !ok {
		return
	}
	values, err := s.store.UniqueValues(f)
	if err != nil {
		fmt.Printf("Unique values failed: %v\n", err)
		return
	}
	renderUnique(os.Stdout, f, values)
}

func (s *session) save(ctx context.Context) {
	name := s.prompt("Dataset name: ")
	if name == "" {
		return
	}
	if err := s.store.SaveCSV(ctx, name); err != nil {
		fmt.Printf("Save failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %d record(s) to %s\n", s.store.Count(), name)
}

func (s *session) export(ctx context.Context) {
	if len(s.lastResults) == 0 {
		fmt.Println("No search or top-N results to export")
		return
	}
	name := s.prompt("Export name (.gz compresses): ")
	if name == "" {
		return
	}
	if err := s.store.ExportCSV(ctx, name, s.lastResults); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Exported %d record(s) to %s\n", len(s.lastResults), name)
}
