package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/terraincognita07/rangepicker/internal/services"
)

func RunProfileListCommand(out io.Writer, dbPath string) error {
	profiles, closeDatabase, err := openProfileService(dbPath)
	if err != nil {
		return err
	}
	defer closeDatabase()

	list, err := profiles.ListProfiles()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No profiles")
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tFORMAT\tSEPARATOR\tFIRST DAY\tYEARS\tLOCALE\tCLOSE")
	for _, profile := range list {
		fmt.Fprintf(writer, "%s\t%s\t%q\t%s\t%s-%s\t%s\t%s\n",
			profile.Name,
			orDash(profile.Format),
			profile.Separator,
			optionalInt(profile.FirstCalendarDay),
			optionalInt(profile.MinYear),
			optionalInt(profile.MaxYear),
			orDash(profile.Locale),
			optionalBool(profile.CloseOnSelected),
		)
	}
	return writer.Flush()
}

func RunProfileSetCommand(out io.Writer, dbPath string, input services.ProfileInput) error {
	profiles, closeDatabase, err := openProfileService(dbPath)
	if err != nil {
		return err
	}
	defer closeDatabase()

	profile, err := profiles.SaveProfile(input)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	_, err = fmt.Fprintf(out, "Profile %s saved\n", profile.Name)
	return err
}

func RunProfileDeleteCommand(out io.Writer, dbPath string, name string) error {
	profiles, closeDatabase, err := openProfileService(dbPath)
	if err != nil {
		return err
	}
	defer closeDatabase()

	if err := profiles.DeleteProfile(name); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	_, err = fmt.Fprintf(out, "Profile %s deleted\n", name)
	return err
}

func optionalInt(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func optionalBool(value *bool) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatBool(*value)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
