package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

func (cli *commandLine) listBanners() error {
	banners, err := admin.NewBannerManager(cli.client).Load(context.Background())
	if err != nil {
		return err
	}
	cli.printBanners(banners)
	return nil
}

// createBanner submits the form and prints the refreshed list
func (cli *commandLine) createBanner(form models.Banner) error {
	mgr := admin.NewBannerManager(cli.client)
	mgr.SetForm(form)

	created, err := mgr.Create(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "created banner %d\n", created.ID)
	cli.printBanners(mgr.Banners())
	return nil
}

// deleteBanner removes a banner and prints the refreshed list
func (cli *commandLine) deleteBanner(ID int64) error {
	mgr := admin.NewBannerManager(cli.client)
	if err := mgr.Delete(context.Background(), ID); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "deleted banner %d\n", ID)
	cli.printBanners(mgr.Banners())
	return nil
}

func (cli *commandLine) printBanners(banners []models.Banner) {
	if len(banners) == 0 {
		fmt.Fprintln(cli.out, "no banners")
		return
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tBUTTON\tLINK\tGRADIENT")
	for _, b := range banners {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s -> %s\n", b.ID, b.Title, b.ButtonText, b.Link, b.BgGradientFrom, b.BgGradientTo)
	}
	w.Flush()
}
