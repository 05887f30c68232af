package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agrigo/farmstore/query"
	"github.com/agrigo/farmstore/record"
)

var (
	queryDataset string
	queryWhere   []string
	queryAny     bool
	queryStats   bool
	queryUnique  string
	queryExport  string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a one-shot condition search against a dataset",
	Example: `  farmstore query --dataset potatoes.csv --where geo:eq:Ontario --where value:gt:1000
  farmstore query --dataset potatoes.csv --where geo:eq:Quebec --where geo:eq:Ontario --any
  farmstore query --dataset potatoes.csv --unique geo
  farmstore query --dataset potatoes.csv --where ref_date:gte:2015 --stats --export recent.csv.gz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := newStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := store.LoadCSV(ctx, queryDataset); err != nil {
			return fmt.Errorf("load %s: %w", queryDataset, err)
		}

		if queryUnique != "" {
			field := record.Field(queryUnique)
			values, err := store.UniqueValues(field)
			if err != nil {
				return err
			}
			renderUnique(os.Stdout, field, values)
			return nil
		}

		conditions := make([]query.Condition, 0, len(queryWhere))
		for _, w := range queryWhere {
			cond, err := parseCondition(w)
			if err != nil {
				return err
			}
			conditions = append(conditions, cond)
		}

		q := query.And(conditions...)
		if queryAny {
			q = query.Or(conditions...)
		}

		results, err := store.Search(q)
		if err != nil {
			return err
		}

		renderRecords(os.Stdout, results)

		if queryStats {
			renderSummary(os.Stdout, query.Summarize(results))
		}

		if queryExport != "" {
			if err := store.ExportCSV(ctx, queryExport, results); err != nil {
				return fmt.Errorf("export %s: %w", queryExport, err)
			}
			fmt.Printf("Exported %d record(s) to %s\n", len(results), queryExport)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryDataset, "dataset", "", "dataset to load (required)")
	queryCmd.Flags().StringArrayVar(&queryWhere, "where", nil, "condition as column:operator:value (repeatable)")
	queryCmd.Flags().BoolVar(&queryAny, "any", false, "match records satisfying any condition instead of all")
	queryCmd.Flags().BoolVar(&queryStats, "stats", false, "print summary statistics over the results")
	queryCmd.Flags().StringVar(&queryUnique, "unique", "", "list distinct values of a column instead of searching")
	queryCmd.Flags().StringVar(&queryExport, "export", "", "write the results to this blob (.gz compresses)")

	_ = queryCmd.MarkFlagRequired("dataset")
}
