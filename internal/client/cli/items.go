package cli

import (
	"context"
	"fmt"

	"itemvault/internal/client/models"
)

// List prints all items.
func (a *App) List(ctx context.Context) error {
	items, err := a.items.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items yet")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "#%d  %s  %.2f\n", item.ID, item.Name, item.Price)
	}
	return nil
}

// Show prompts for an id and prints the full item.
func (a *App) Show(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	item, err := a.items.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n%s\nPrice: %.2f\n", item.ID, item.Name, item.Description, item.Price)
	return nil
}

// Add prompts for item fields and creates the item.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	price, _, err := GetFloat(a.reader, "Enter price", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	item, err := a.items.Create(ctx, models.CreateItemData{Name: name, Description: description, Price: price})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created item #%d\n", item.ID)
	return nil
}

// Update prompts for an id and new field values; empty answers leave the
// field unchanged.
func (a *App) Update(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "New description (empty to keep)", a.out)
	if err != nil {
		return err
	}
	price, priceSet, err := GetFloat(a.reader, "New price (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	var data models.UpdateItemData
	if name != "" {
		data.Name = &name
	}
	if description != "" {
		data.Description = &description
	}
	if priceSet {
		data.Price = &price
	}

	item, err := a.items.Update(ctx, id, data)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Updated item #%d\n", item.ID)
	return nil
}

// Delete prompts for an id and removes the item.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if err := a.items.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Deleted item #%d\n", id)
	return nil
}
