package main

import (
	"fmt"

	"github.com/fekuna/omnipos-menu-service/internal/menu/catalog"
	"github.com/fekuna/omnipos-menu-service/internal/menu/dto"
	"github.com/fekuna/omnipos-menu-service/internal/model"
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	var (
		pageSize int
		pages    int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items, loading pages until exhausted or --pages is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageSize <= 0 {
				pageSize = a.cfg.Catalog.PageSize
			}
			cat := catalog.New(a.repo, pageSize)

			fetched := 0
			for cat.HasMore() {
				if pages > 0 && fetched >= pages {
					break
				}
				if _, err := cat.LoadMore(cmd.Context()); err != nil {
					return err
				}
				fetched++
			}

			items := catalog.Filter(cat.Items(), search)
			fmt.Fprintln(cmd.OutOrStdout(), renderItems(items))
			if cat.HasMore() {
				fmt.Fprintln(cmd.OutOrStdout(), "(more items available; raise --pages)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Items per page (default from MENU_PAGE_SIZE)")
	cmd.Flags().IntVar(&pages, "pages", 0, "Maximum pages to load (0 = all)")
	cmd.Flags().StringVar(&search, "search", "", "Filter loaded items by name or category substring")
	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	input := &dto.ItemInput{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new menu item",
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.uc.CreateItem(cmd.Context(), input)
			if err != nil {
				return err
			}
			drainNotifications(a)
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", item.ID)
			return nil
		},
	}

	bindItemFlags(cmd, input)
	return cmd
}

func newEditCommand(a *app) *cobra.Command {
	input := &dto.ItemInput{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rewrite all fields of an existing menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			// Load current values first so unspecified flags keep them;
			// specified flags overwrite unconditionally (full replace).
			current, err := a.uc.LoadForEdit(cmd.Context(), id)
			if err != nil {
				return err
			}
			merged := &dto.ItemInput{
				Name:     current.Name,
				Category: current.Category,
				Price:    current.Price,
				Cost:     current.Cost,
				Stock:    current.Stock,
				Options:  string(current.Options),
			}
			for _, field := range dto.EditableFields {
				if cmd.Flags().Changed(field) {
					if !merged.Set(field, input.Get(field)) {
						return fmt.Errorf("%s: value contains characters the field does not accept", field)
					}
				}
			}

			if _, err := a.uc.UpdateItem(cmd.Context(), id, merged); err != nil {
				return err
			}
			drainNotifications(a)
			return nil
		},
	}

	bindItemFlags(cmd, input)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a menu item irreversibly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.uc.DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			drainNotifications(a)
			return nil
		},
	}
}

func bindItemFlags(cmd *cobra.Command, input *dto.ItemInput) {
	cmd.Flags().StringVar(&input.Name, model.FieldName, "", "Item name")
	cmd.Flags().StringVar(&input.Category, model.FieldCategory, "", "Item category")
	cmd.Flags().StringVar(&input.Price, model.FieldPrice, "", "Selling price")
	cmd.Flags().StringVar(&input.Cost, model.FieldCost, "", "Cost of goods")
	cmd.Flags().StringVar(&input.Stock, model.FieldStock, "", "Stock on hand")
	cmd.Flags().StringVar(&input.Options, model.FieldOptions, "", "Serving option: small, medium or large")
}

func renderItems(items []model.MenuItem) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.ID, item.Name, item.Category, item.Cost, item.Price, item.Stock, string(item.Options)}
	}
	return renderTable(
		[]string{"ID", "Name", "Category", "Cost", "Price", "Stock", "Options"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	)
}
