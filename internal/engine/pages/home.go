package pages

import (
	"errors"

	"go.trai.ch/glance/internal/core/domain"
)

const homeIntro = "Explore the dataset loaded at startup. Use the pages below to browse " +
	"every row, compare columns over a range of rows, or try the extra page."

// Home renders the landing page with the page directory and a preview of the first rows.
func Home(ds *domain.Dataset, nav []domain.Page, opts HomeOptions) domain.HomeView {
	return domain.HomeView{
		Title:   opts.Title,
		Intro:   homeIntro,
		Pages:   nav,
		Headers: ds.ColumnNames(),
		Preview: ds.Head(opts.PreviewRows),
		Rows:    ds.RowCount(),
		Columns: ds.ColumnCount(),
		Empty:   ds.Empty(),
	}
}

// Extra renders the placeholder page. It does not depend on the data.
func Extra() domain.ExtraView {
	return domain.ExtraView{
		Title: "Extra",
		Paragraphs: []string{
			"This page is reserved for further analysis of the dataset.",
			"Nothing here reads the data yet.",
		},
	}
}

// Failure renders the view shown on every page when the dataset could not be loaded.
func Failure(err error) domain.FailureView {
	view := domain.FailureView{
		Title:   "The dataset could not be loaded",
		Message: err.Error(),
	}
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		view.Source = loadErr.Path
	}
	return view
}
