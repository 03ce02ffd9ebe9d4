package domain

const itemXML = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom" xmlns:g="http://base.google.com/ns/1.0">
  <id>http://www.google.com/base/feeds/items/1234</id>
  <title type="text">Digital camera</title>
  <link rel="edit" type="application/atom+xml" href="http://www.google.com/base/feeds/items/1234"/>
  <g:item_type type="text">Products</g:item_type>
  <g:price type="floatUnit">199.99 usd</g:price>
  <g:label type="text">camera</g:label>
  <g:label type="text">digital</g:label>
  <g:target_country type="text">US</g:target_country>
  <g:cost type="floatUnit" access="private">120 usd</g:cost>
</entry>`

const itemsFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/"
      xmlns:g="http://base.google.com/ns/1.0">
  <id>http://www.google.com/base/feeds/items</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Items matching query: [item type:products]</title>
  <link rel="http://schemas.google.com/g/2005#post" type="application/atom+xml" href="http://www.google.com/base/feeds/items"/>
  <openSearch:totalResults>2</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <entry>
    <id>http://www.google.com/base/feeds/items/1</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">Camera one</title>
    <g:item_type type="text">Products</g:item_type>
    <g:price type="floatUnit">100 usd</g:price>
  </entry>
  <entry>
    <id>http://www.google.com/base/feeds/items/2</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">Camera two</title>
    <g:item_type type="text">Products</g:item_type>
    <g:price type="floatUnit">250 usd</g:price>
  </entry>
</feed>`

const attributeEntryXML = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <id>http://www.google.com/base/feeds/attributes/brand%28text%29N%5Bitem+type%3Aproducts%5D</id>
  <title type="text">brand(text)</title>
  <gm:attribute name="brand" type="text" count="2450">
    <gm:value count="130">Acme</gm:value>
    <gm:value count="85">Globex</gm:value>
  </gm:attribute>
</entry>`

const attributesFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/"
      xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <id>http://www.google.com/base/feeds/attributes</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Attribute histogram</title>
  <openSearch:totalResults>1</openSearch:totalResults>
  <entry>
    <id>http://www.google.com/base/feeds/attributes/brand</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">brand(text)</title>
    <gm:attribute name="brand" type="text" count="2450">
      <gm:value count="130">Acme</gm:value>
    </gm:attribute>
  </entry>
</feed>`

const itemTypeEntryXML = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom" xmlns:gm="http://base.google.com/ns-metadata/1.0">
  <id>http://www.google.com/base/feeds/itemtypes/en_US/products</id>
  <title type="text">products</title>
  <gm:item_type>products</gm:item_type>
  <gm:attributes>
    <gm:attribute name="product type" type="text"/>
    <gm:attribute name="price" type="floatUnit"/>
  </gm:attributes>
</entry>`

const localesFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>http://www.google.com/base/feeds/locales/</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Locales</title>
  <entry>
    <id>http://www.google.com/base/feeds/locales/en_US</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">en_US</title>
  </entry>
  <entry>
    <id>http://www.google.com/base/feeds/locales/de_DE</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">de_DE</title>
  </entry>
</feed>`

const itemTypesFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>http://www.google.com/base/feeds/itemtypes/en_US</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Item types for locale en_US</title>
  <entry xmlns:gm="http://base.google.com/ns-metadata/1.0">
    <id>http://www.google.com/base/feeds/itemtypes/en_US/products</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">products</title>
    <gm:item_type>products</gm:item_type>
    <gm:attributes>
      <gm:attribute name="product type" type="text"/>
      <gm:attribute name="price" type="floatUnit"/>
    </gm:attributes>
  </entry>
  <entry xmlns:gm="http://base.google.com/ns-metadata/1.0">
    <id>http://www.google.com/base/feeds/itemtypes/en_US/events</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">events</title>
    <gm:item_type>events and activities</gm:item_type>
  </entry>
</feed>`

const entryScopedItemsFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>http://www.google.com/base/feeds/items</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Items</title>
  <entry xmlns:g="http://base.google.com/ns/1.0">
    <id>http://www.google.com/base/feeds/items/1</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">Camera one</title>
    <g:item_type type="text">Products</g:item_type>
    <g:price type="floatUnit">100 usd</g:price>
  </entry>
</feed>`
