package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/suparena/querywatch"
	"github.com/suparena/querywatch/descriptor"
	"github.com/suparena/querywatch/registry"
	"github.com/suparena/querywatch/store/memory"
	"github.com/suparena/querywatch/store/testmodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := querywatch.GetVersionInfo()
		fmt.Printf("QueryWatch watchdemo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	ctx := context.Background()

	players := memory.New(memory.WithKeyFunc(func(p testmodels.Player) string { return p.ID }))
	if err := registry.Register[testmodels.Player](registry.Default(), registry.DefaultName, players); err != nil {
		fmt.Fprintf(os.Stderr, "register store: %v\n", err)
		os.Exit(1)
	}

	d := descriptor.New(
		descriptor.Where(`Country == "US" && Age >= 21`),
		descriptor.OrderBy("Age", descriptor.Ascending),
	)
	key := querywatch.NewFetchAllKey(
		registry.Resolve[testmodels.Player](registry.Default(), registry.DefaultName),
		d,
		func(p testmodels.Player) string { return fmt.Sprintf("%s (%d)", p.Name, p.Age) },
	)
	fmt.Printf("watching %s\n", key.Identity())

	cancel := key.Subscribe(ctx, func(names []string) {
		fmt.Printf("observed: %v\n", names)
	})
	defer cancel()

	seed := []testmodels.Player{
		{ID: "p1", Name: "ada", Age: 25, Country: "US"},
		{ID: "p2", Name: "bob", Age: 17, Country: "CA"},
		{ID: "p3", Name: "carol", Age: 30, Country: "US"},
		{ID: "p4", Name: "eve", Age: 35, Country: "US"},
	}
	for _, p := range seed {
		if err := players.Put(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "put: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(200 * time.Millisecond)
	}

	if err := players.Delete(ctx, "p3"); err != nil {
		fmt.Fprintf(os.Stderr, "delete: %v\n", err)
		os.Exit(1)
	}
	time.Sleep(200 * time.Millisecond)
}
