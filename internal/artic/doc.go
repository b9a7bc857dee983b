// Package artic is a small HTTP client for the Art Institute of Chicago
// public API.
//
// # Overview
//
// easel only needs one endpoint, the paginated artwork listing:
//
//	GET https://api.artic.edu/api/v1/artworks?page=2&limit=12&fields=id,title,...
//
// The response carries one page of records plus pagination metadata. Pages are
// 1-based, limit is the page size and total is the number of records in the
// whole collection, so the page count is ceil(total/limit).
//
// # Files
//
//   - client.go: Client, FetchPage and request plumbing
//   - types.go: wire types and schema validation
//
// # Validation
//
// Every record must carry a positive id and a title (possibly empty). All other
// fields are nullable. One bad record fails the whole page with
// ErrInvalidRecord; a page whose limit is not positive fails with
// ErrInvalidPagination. Callers treat any error as "no data for this page".
//
// # Failure Handling
//
// Requests go through a gobreaker circuit breaker. After five consecutive
// failures the breaker opens for thirty seconds and FetchPage fails fast with
// gobreaker.ErrOpenState instead of hitting the network.
//
// # Usage Example
//
//	client, err := artic.NewClient(cfg.APIURL, artic.ClientOptions{PageSize: cfg.PageSize})
//	if err != nil {
//		return err
//	}
//	page, err := client.FetchPage(ctx, 1)
//	if err != nil {
//		// render "no data", keep any pending selection plan
//	}
//	ids := artic.RecordIDs(page.Records)
package artic
