package iodwca

import (
	"archive/zip"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gnsys"
)

// ResolveInput turns the build command's input argument into a local taxon
// file ready for the LineSource. URLs are downloaded into the cache, zip
// archives are extracted there, plain files are used in place.
func ResolveInput(cfg *config.Config) (string, error) {
	input := cfg.Import.InputPath
	cacheDir := config.DownloadDir(cfg.HomeDir)
	if err := gnsys.MakeDir(cacheDir); err != nil {
		return "", OpenError(cacheDir, err)
	}

	if isURL(input) {
		local, err := download(input, cacheDir)
		if err != nil {
			return "", err
		}
		input = local
	}

	info, err := os.Stat(input)
	if err != nil {
		return "", NotFoundError(input, err)
	}
	if info.IsDir() {
		return "", NotFoundError(input, nil)
	}

	if strings.HasSuffix(strings.ToLower(input), ".zip") {
		return extractTaxonFile(input, cacheDir)
	}
	return input, nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// download fetches a remote input into the cache directory, showing a
// progress bar when the server reports a content length.
func download(rawURL, cacheDir string) (string, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return "", DownloadError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", DownloadError(rawURL, nil)
	}

	name := filepath.Base(resp.Request.URL.Path)
	if name == "" || name == "/" || name == "." {
		name = "dwca-input"
	}
	dest := filepath.Join(cacheDir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", DownloadError(rawURL, err)
	}
	defer f.Close()

	var src io.Reader = resp.Body
	if resp.ContentLength > 0 {
		bar := pb.Full.Start64(resp.ContentLength)
		bar.Set("prefix", "Downloading ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		src = bar.NewProxyReader(resp.Body)
	}

	if _, err = io.Copy(f, src); err != nil {
		return "", DownloadError(rawURL, err)
	}

	gn.Info("Downloaded <em>%s</em>", name)
	return dest, nil
}

// extractTaxonFile extracts the taxon core member of a DwCA zip archive
// next to the archive in the cache directory and returns its path.
func extractTaxonFile(archivePath, cacheDir string) (string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", ArchiveError(archivePath, err)
	}
	defer zr.Close()

	member := findTaxonMember(zr.File)
	if member == nil {
		return "", NoCoreError(archivePath)
	}

	dest := filepath.Join(cacheDir, filepath.Base(member.Name))
	out, err := os.Create(dest)
	if err != nil {
		return "", ArchiveError(archivePath, err)
	}
	defer out.Close()

	in, err := member.Open()
	if err != nil {
		return "", ArchiveError(archivePath, err)
	}
	defer in.Close()

	if _, err = io.Copy(out, in); err != nil {
		return "", ArchiveError(archivePath, err)
	}

	gn.Info("Extracted taxon core <em>%s</em>", filepath.Base(member.Name))
	return dest, nil
}

// findTaxonMember applies the DwCA core heuristic: a member named
// taxon.txt or taxa.txt wins, then any .tab member, then the largest
// .txt/.tsv member.
func findTaxonMember(files []*zip.File) *zip.File {
	var largest *zip.File
	var tab *zip.File

	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		name := strings.ToLower(filepath.Base(f.Name))
		switch name {
		case "taxon.txt", "taxa.txt":
			return f
		}
		switch {
		case strings.HasSuffix(name, ".tab"):
			if tab == nil {
				tab = f
			}
		case strings.HasSuffix(name, ".txt"),
			strings.HasSuffix(name, ".tsv"):
			if largest == nil ||
				f.UncompressedSize64 > largest.UncompressedSize64 {
				largest = f
			}
		}
	}

	if tab != nil {
		return tab
	}
	return largest
}
