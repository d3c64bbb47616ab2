package contestants

import (
	"context"
	"fmt"
	"strings"

	"bachelorette-db/lib/scrapers/wikipedia"

	"github.com/PuerkitoBio/goquery"
)

const season1Page = `<html><body>
<table class="wikitable">
<tr><th>Name</th><th>Age</th><th>Hometown</th><th>Job</th><th>Eliminated</th></tr>
<tr><td><b><a href="/wiki/Ryan_Sutter">Ryan Sutter</a></b></td><td>28</td><td>Vail, Colorado</td><td>Firefighter</td><td>Winner</td></tr>
<tr><td>Charlie Maher</td><td>28</td><td>Hermosa Beach, California</td><td>Financial Analyst</td><td>Runner-up</td></tr>
<tr><td>Russ</td><td>30</td><td>San Rafael, California</td><td>Writer</td><td>Episode 5</td></tr>
<tr><td>Greg</td><td>28</td><td>Manhattan Beach, California</td><td>Entrepreneur</td><td rowspan="2">Episode 4</td></tr>
<tr><td>Bob</td><td>34</td><td>Fort Lauderdale, Florida</td><td>Accountant</td></tr>
</table>
</body></html>`

const season2Page = `<html><body>
<table class="wikitable">
<tr><th>Name</th><th>Age</th><th>Hometown</th><th>Occupation</th><th>Eliminated</th></tr>
<tr><td>Ian McKee</td><td>31</td><td>Marlboro, New Jersey</td><td>Investment Banker</td><td>Winner</td></tr>
<tr><td>Matt</td><td>27</td><td>Boston, Massachusetts</td><td>Sales</td><td>Runner-up</td></tr>
<tr><td>Jerry</td><td>30</td><td>Austin, Texas</td><td>Teacher</td><td>Episode 1</td></tr>
</table>
</body></html>`

const season5Page = `<html><body>
<table class="wikitable sortable">
<tr><th>Name</th><th>Age</th><th>Hometown</th><th>Occupation</th><th>Outcome</th><th>Place</th></tr>
<tr><td><a href="/wiki/Jesse">Jesse Csincsak</a></td><td>25</td><td>Breckenridge, Colorado</td><td>Snowboarder</td><td>Winner</td><td>1</td></tr>
<tr><td>Jeremy Anderson</td><td>30</td><td>Pittsburgh, Pennsylvania</td><td>Attorney</td><td>Episode 9</td><td>2</td></tr>
<tr><td>Graham Bunn</td><td>29</td><td>Tarboro, North Carolina</td><td>Pro Basketball Player</td><td rowspan="2">Episode 8</td><td>3</td></tr>
<tr><td>Jason Mesnick</td><td>31</td><td>Seattle, Washington</td><td>Account Executive</td><td>4</td></tr>
<tr><td>Sean</td><td>27</td><td>Dallas, Texas</td><td>Sales</td><td rowspan="2">Episode 7</td><td rowspan="2">5-6th</td></tr>
<tr><td>Paul</td><td>N/A</td><td>Arlington, Virginia</td><td>Engineer</td></tr>
</table>
</body></html>`

const season16Page = `<html><body>
<table class="wikitable">
<tr><th>Name</th><th>Age</th><th>Hometown</th><th>Occupation</th><th>Outcome</th><th>Place</th></tr>
<tr><td>Dale Moss</td><td>32</td><td>Brandon, South Dakota</td><td>Model</td><td>Engaged</td><td>1</td></tr>
<tr><td>Zac Clark</td><td>36</td><td>Haddonfield, New Jersey</td><td>Addiction Specialist</td><td>Engaged</td><td>1</td></tr>
<tr><td>Ben Smith</td><td>30</td><td>Venice, California</td><td>Personal Trainer</td><td>Episode 12</td><td>2</td></tr>
<tr><td>Ivan Hall</td><td>28</td><td>Dallas, Texas</td><td>Engineer</td><td>Episode 12</td><td>3</td></tr>
</table>
</body></html>`

// pageSource serves canned pages by season
type pageSource map[int]string

func (p pageSource) SeasonTable(_ context.Context, season int) (*goquery.Selection, error) {
	markup, ok := p[season]
	if !ok {
		return nil, fmt.Errorf("season %d: %w", season, wikipedia.ErrBadStatus)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return wikipedia.FirstTable(doc, wikipedia.DefaultTableSelector)
}

// a sub-header row (th cells only) between two contestants
const subHeaderPage = `<html><body>
<table class="wikitable">
<tr><th>Name</th><th>Age</th><th>Hometown</th><th>Occupation</th><th>Outcome</th><th>Place</th></tr>
<tr><td>Jesse Csincsak</td><td>25</td><td>Breckenridge, Colorado</td><td>Snowboarder</td><td>Winner</td><td>1</td></tr>
<tr><th colspan="6">Left the show</th></tr>
<tr><td>Jeremy Anderson</td><td>30</td><td>Pittsburgh, Pennsylvania</td><td>Attorney</td><td>Episode 9</td><td>2</td></tr>
</table>
</body></html>`
