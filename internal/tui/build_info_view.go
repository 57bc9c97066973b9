// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quest-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", "Quest Client"},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s │ %s\n", padRight(row[0], 11), row[1])
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}
