package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/environment/envconfig"
	"github.com/samuelfneumann/gouniverse/environment/gymcore"
	"github.com/samuelfneumann/gouniverse/environment/wrappers"
)

func main() {
	envID := flag.String("env", "", "print the reduced action space of "+
		"this registered environment")
	configPath := flag.String("config", "", "JSON click grid config "+
		"(envconfig.Config) to render")
	out := flag.String("render", "grid.png", "PNG file to render the "+
		"click grid to")
	list := flag.Bool("list", false, "list the registered environments")
	flag.Parse()

	if *list {
		for _, id := range environment.Default.IDs() {
			spec, _ := environment.Default.Spec(id)
			fmt.Printf("%-45v %v\n", id, wrappers.ClassifyEnv(spec))
		}
	}

	if *envID != "" {
		spec, err := environment.Default.Spec(*envID)
		if err != nil {
			log.Fatal(err)
		}
		space, err := wrappers.SafeActions(spec, gymcore.Known)
		if err != nil {
			log.Fatal(err)
		}
		if space == nil {
			fmt.Printf("%v keeps its raw VNC action space\n", *envID)
		} else {
			for i, action := range space.Actions() {
				fmt.Printf("%3d %v\n", i, action)
			}
		}
	}

	if *configPath != "" {
		c, err := envconfig.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		active, step, noclick := c.ClickGridArgs()
		grid, err := wrappers.NewClickGrid(active, step, noclick)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("noclick regions removed %d of %d actions", grid.Removed(),
			grid.Considered())

		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		if err := grid.Render(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("rendered %v actions to %v", grid.Len(), *out)
	}
}
