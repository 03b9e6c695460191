package view

// themeInitScript runs in <head> before first paint. It restores the
// preference cookie, which an exported page has no server to read, and
// resolves system against the OS color scheme. app.js reuses the helpers it
// leaves on window.
const themeInitScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia?window.matchMedia('(prefers-color-scheme: dark)'):null;
  var key=root.getAttribute('data-theme-key')||'brett-portfolio-theme';
  function valid(p){ return p==='light'||p==='dark'||p==='system'; }
  function stored(){
    var parts=document.cookie?document.cookie.split('; '):[];
    for(var i=0;i<parts.length;i++){
      var eq=parts[i].indexOf('=');
      if(eq>0&&parts[i].slice(0,eq)===key){
        try { return decodeURIComponent(parts[i].slice(eq+1)); } catch (_) { return ''; }
      }
    }
    return '';
  }
  function resolve(p){
    if(p==='system'){ return media&&media.matches?'dark':'light'; }
    return p;
  }
  function apply(p){
    if(!valid(p)){ return; }
    var mode=resolve(p);
    root.setAttribute('data-theme-preference',p);
    root.classList.remove('light','dark');
    root.classList.add(mode);
    root.setAttribute('data-theme',mode);
  }
  var p=stored();
  apply(valid(p)?p:root.getAttribute('data-theme-preference'));
  window.__portfolioTheme={key:key,media:media,resolve:resolve,apply:apply};
})();`
