package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlvinHon/diffie-hellman-groups/dh"
	"github.com/AlvinHon/diffie-hellman-groups/group"
	"github.com/AlvinHon/diffie-hellman-groups/modp"
	"github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

func (a *app) searchOptions(module string) []modp.SearchOption {
	return []modp.SearchOption{
		modp.WithMaxTrials(a.conf.Search.MaxTrials),
		modp.WithLogger(a.logger.With("module", module)),
	}
}

func (a *app) list(c *cli.Context) error {
	for _, g := range modp.Standard() {
		fmt.Fprintf(a.out, "%-3d %-9s %5d bits\n", modp.StandardID(g), g.Name(), g.BitLen())
	}
	return nil
}

func (a *app) check(c *cli.Context) error {
	g, err := modp.Lookup(c.String("group"))
	if err != nil {
		return err
	}
	start := time.Now()
	if err = g.Validate(c.Bool("primes")); err != nil {
		return err
	}
	a.logger.Debug("validated", "group", g.Name(), "primes", c.Bool("primes"), "took", elapsed(start))
	fmt.Fprintf(a.out, "%s ok\n", g)
	return nil
}

func (a *app) subgroup(c *cli.Context) error {
	parent, err := modp.Lookup(c.String("group"))
	if err != nil {
		return err
	}
	ctx, cancel := a.searchContext(c)
	defer cancel()

	start := time.Now()
	g, err := modp.NewSubGroup(ctx, parent, c.Int("bits"), a.searchOptions("subgroup")...)
	if err != nil {
		return err
	}
	a.logger.Info("generator found", "group", g.Name(), "took", elapsed(start))
	a.printGroup(g)
	return nil
}

func (a *app) custom(c *cli.Context) error {
	p, err := modp.ParseInteger(c.String("prime"))
	if err != nil {
		return err
	}
	ctx, cancel := a.searchContext(c)
	defer cancel()

	g, err := modp.NewSafePrimeGroup(ctx, p, c.Int("bits"), a.searchOptions("custom")...)
	if err != nil {
		return err
	}
	a.printGroup(g)
	return nil
}

func (a *app) generate(c *cli.Context) error {
	ctx, cancel := a.searchContext(c)
	defer cancel()

	start := time.Now()
	g, err := modp.GenerateSafePrimeGroup(ctx, c.Int("prime-bits"), c.Int("bits"), a.searchOptions("generate")...)
	if err != nil {
		return err
	}
	a.logger.Info("safe prime generated", "bits", g.BitLen(), "took", elapsed(start))
	a.printGroup(g)
	return nil
}

func (a *app) exchange(c *cli.Context) error {
	g, err := a.backend(c.String("backend"), c.String("group"))
	if err != nil {
		return err
	}
	alice, err := dh.GenerateKey(nil, g)
	if err != nil {
		return err
	}
	bob, err := dh.GenerateKey(nil, g)
	if err != nil {
		return err
	}
	s1, err := alice.SharedSecret(bob.Public())
	if err != nil {
		return err
	}
	s2, err := bob.SharedSecret(alice.Public())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "group  %s\n", g.Name())
	fmt.Fprintf(a.out, "A      %s\n", alice.Public())
	fmt.Fprintf(a.out, "B      %s\n", bob.Public())
	fmt.Fprintf(a.out, "secret %s\n", s1)
	if !s1.IsEqual(s2) {
		return errors.New("shared secrets differ")
	}
	return nil
}

func (a *app) backend(name, id string) (group.Group, error) {
	switch strings.ToLower(name) {
	case "modp":
		desc, err := modp.Lookup(id)
		if err != nil {
			return nil, err
		}
		return group.ModP(desc), nil
	case "p-256", "p256":
		return group.P256(), nil
	case "p-384", "p384":
		return group.P384(), nil
	case "ristretto255":
		return group.Ristretto255(), nil
	case "secp256k1":
		return group.SecP256k1(), nil
	}
	return nil, errors.Errorf("unknown backend %q", name)
}

func (a *app) printGroup(g *modp.Group) {
	fmt.Fprintf(a.out, "name %s\n", g.Name())
	fmt.Fprintf(a.out, "p    0x%s\n", g.P().Text(16))
	fmt.Fprintf(a.out, "q    0x%s\n", g.Q().Text(16))
	fmt.Fprintf(a.out, "g    %s\n", g.G().String())
}
