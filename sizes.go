// seehuhn.de/go/fontimize - generate optimised fonts from the characters in use
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontimize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/exp/maps"
)

// totalFileSize returns the combined size of the given files in bytes.
func totalFileSize(paths []string) (int64, error) {
	var sum int64
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		sum += fi.Size()
	}
	return sum, nil
}

// humanSize formats a byte count as "nKB" below one MiB and as "n.nMB"
// above.
func humanSize(n int64) string {
	if n < 1024*1024 {
		return fmt.Sprintf("%.0fKB", float64(n)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
}

// logSavings reports the size difference between the original and the
// generated fonts.
func logSavings(logger *slog.Logger, res map[string]string) {
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}

	originals := maps.Keys(res)
	slices.Sort(originals)
	generated := make([]string, len(originals))
	for i, font := range originals {
		generated[i] = res[font]
	}

	sumOrig, err := totalFileSize(originals)
	if err == nil {
		var sumNew int64
		sumNew, err = totalFileSize(generated)
		if err == nil {
			attrs := []any{
				"fonts", len(res),
				"originalSize", humanSize(sumOrig),
				"optimisedSize", humanSize(sumNew),
			}
			if sumOrig > 0 {
				savings := sumOrig - sumNew
				attrs = append(attrs,
					"saved", humanSize(savings),
					"savedPercent", fmt.Sprintf("%.1f", float64(savings)/float64(sumOrig)*100))
			}
			logger.Info("fonts optimised", attrs...)
			return
		}
	}
	logger.Warn("could not determine font file sizes", "err", err)
}
