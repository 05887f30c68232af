// Package farmstore is an interactive, in-memory record manager for tabular
// farm-production data loaded from CSV.
//
// The Store owns the canonical record collection and coordinates the search,
// sort and statistics engines:
//
//	store := farmstore.New(farmstore.WithBlobStore(blobstore.NewLocalStore("./data")))
//	_ = store.LoadCSV(ctx, "potatoes.csv")
//
//	results, _ := store.Search(query.And(
//	    query.Condition{Column: record.FieldGeo, Operator: query.OpEqual, Value: "Ontario"},
//	    query.Condition{Column: record.FieldValue, Operator: query.OpGreaterThan, Value: "1000"},
//	))
//
//	top, _ := store.TopN(rank.TopNSpec{N: 5, SortSpec: rank.SortSpec{Field: record.FieldValue}})
//
// Search results, sorted views and top-N views never alias the canonical
// collection; only Sort reorders it, and only on explicit request. The whole
// data model lives in one process's memory and is accessed sequentially from
// one interactive session — there is no locking and no concurrent use.
package farmstore
