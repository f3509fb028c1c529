package templates

const pageCSS = `
body{font-family:system-ui,sans-serif;background:#f5f7fb;color:#212529;margin:0}
main{max-width:960px;margin:0 auto;padding:24px}
h1{color:#667eea}
.calculator-card,.chart,.table-section,.summary-card{background:#fff;border-radius:12px;padding:20px;margin-bottom:20px;box-shadow:0 2px 8px rgba(0,0,0,.06)}
form label{display:block;margin-top:12px;font-weight:600}
form input,form select{width:100%;padding:8px;box-sizing:border-box}
button{margin-top:16px;padding:10px 20px;background:#667eea;color:#fff;border:0;border-radius:6px}
.error{color:#dc3545;font-weight:600}
.summary-cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:16px}
.summary-card .value{font-size:1.6em;font-weight:700;margin:4px 0}
.sparkline{width:100%;height:30px}
.axis{font-size:11px;fill:#6c757d}
.legend{list-style:none;padding:0}
.swatch{display:inline-block;width:12px;height:12px;margin-right:6px;border-radius:2px}
.view-toggle a{margin-right:8px;padding:6px 12px;border-radius:6px;text-decoration:none;color:#667eea}
.view-toggle a.active{background:#667eea;color:#fff}
table{width:100%;border-collapse:collapse;margin-top:12px}
th,td{padding:6px 8px;border-bottom:1px solid #e9ecef;text-align:right}
th:first-child,td:first-child{text-align:left}
.growth-badge{display:block;font-size:.8em;color:#28a745}
`
