package html

const documentTemplate = `<!DOCTYPE html>
<html>
    <head>
        <meta charset="utf-8">
        <title>{{ .Title }}</title>
        <style>
            table, th, td {
                border: 1px solid #000000;
                text-align: center;
                width: {{ .CellWidth }};
                border-collapse: collapse;{{ if .CellMargin }}
                margin: {{ .CellMargin }};{{ end }}
            }
        </style>
    </head>
    <body>
        <h1>{{ .Title }}</h1>
        <table>
            <thead>
                <tr>{{ range .Headers }}
                    <th>{{ . }}</th>{{ end }}
                </tr>
            </thead>
            <tbody>{{ range .Rows }}
                <tr>{{ range . }}
                    <td>{{ . }}</td>{{ end }}
                </tr>{{ end }}
            </tbody>
        </table>
    </body>
</html>
`
