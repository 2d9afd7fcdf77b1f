package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const pageSize = 20

func (a *App) ListWallets(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			printlnFn("Usage: wallets [page]")
			return nil
		}
		page = p
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	wallets, err := a.client.ListWallets(ctx, pageSize, int32((page-1)*pageSize))
	if err != nil {
		return report("Listing wallets", err)
	}
	if len(wallets) == 0 {
		printlnFn("No wallets")
		return nil
	}
	for _, w := range wallets {
		printlnFn(fmt.Sprintf("%-5s %08d  %s", strings.ToUpper(w.GetType()), w.GetIdentifier(), w.GetBalance()))
	}
	return nil
}

func (a *App) CreateWallet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: create-wallet <usd|eur|gold>")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	w, err := a.client.CreateWallet(ctx, args[0])
	if err != nil {
		return report("Creating wallet", err)
	}
	printlnFn(fmt.Sprintf("Created %s wallet %08d", strings.ToUpper(w.GetType()), w.GetIdentifier()))
	return nil
}

func (a *App) Activity(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	entries, err := a.client.ListActivity(ctx, pageSize)
	if err != nil {
		return report("Listing activity", err)
	}
	if len(entries) == 0 {
		printlnFn("No activity")
		return nil
	}
	for _, e := range entries {
		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+e.Metadata[k])
		}
		printlnFn(fmt.Sprintf("%s  %-7s %s", e.GetCreatedAt().AsTime().Local().Format("2006-01-02 15:04:05"), e.GetAction(), strings.Join(parts, " ")))
	}
	return nil
}
