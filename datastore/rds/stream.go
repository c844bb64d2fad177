/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"
	"fmt"
	"time"

	"github.com/suparena/relstore/storagemodels"
)

// Stream pages through Find in the background and emits every matching item
// on the returned channel. The channel closes when the scan is exhausted, the
// context is canceled, or a page fails; a failed page emits one StreamResult
// carrying the error and ends the stream. There is no retry logic here; the
// statement executor owns retry policy.
func (d *RdsDataStore[T]) Stream(ctx context.Context, query *storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	go d.streamWorker(ctx, query, options, resultCh)
	return resultCh
}

func (d *RdsDataStore[T]) streamWorker(
	ctx context.Context,
	query *storagemodels.Query,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	defer close(resultCh)

	var base storagemodels.Query
	if query != nil {
		base = *query
	}
	cursor := base.Cursor

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()

	reportProgress := func(lastCursor string) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			LastCursor:     lastCursor,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(itemIndex) / elapsed
		}
		options.ProgressHandler(progress)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		page := storagemodels.Query{
			Cursor: cursor,
			Limit:  options.PageSize,
			Filter: base.Filter,
		}
		res, err := d.Find(ctx, &page)
		if err != nil {
			result := storagemodels.StreamResult[T]{
				Error: fmt.Errorf("find failed: %w", err),
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			select {
			case <-ctx.Done():
			case resultCh <- result:
			}
			return
		}

		pageNumber++
		for _, edge := range res.Edges {
			result := storagemodels.StreamResult[T]{
				Item: edge.Node,
				Key:  edge.Cursor,
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			itemIndex++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}

		reportProgress(cursor)

		if res.Cursor == nil {
			break
		}
		cursor = *res.Cursor
	}

	reportProgress(cursor)
}
